package sink

import (
	"bufio"
	"io"
	"os"
	"sync"
)

// Console wraps an io.Writer as the primary byte sink, flushing on line
// terminators so interactive output stays visible.
type Console struct {
	w *bufio.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: bufio.NewWriter(w)}
}

func (c *Console) WriteByte(b byte) error {
	if err := c.w.WriteByte(b); err != nil {
		return err
	}
	if b == '\n' {
		return c.w.Flush()
	}
	return nil
}

func (c *Console) Flush() error {
	return c.w.Flush()
}

// LocalCommand delivers structured payloads to a local writer, one payload
// per line. The destination is typically a command serial device file.
type LocalCommand struct {
	mu sync.Mutex
	w  io.Writer
}

func NewLocalCommand(w io.Writer) *LocalCommand {
	return &LocalCommand{w: w}
}

// OpenLocalCommand opens a device path for command-channel delivery, or
// stdout when the path is empty.
func OpenLocalCommand(path string) (*LocalCommand, error) {
	if path == "" {
		return NewLocalCommand(os.Stdout), nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	return NewLocalCommand(f), nil
}

func (l *LocalCommand) LogMessage(payload string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.w, payload+"\n")
}

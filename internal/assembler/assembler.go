package assembler

import (
	"logmux/internal/model"
)

type state int

const (
	stateAwaitFirst state = iota
	stateCollecting
	stateDiscarding
)

// Assembler consumes a log stream one byte at a time and emits completed
// lines. The first byte of each line selects the severity; lines above the
// threshold (or with no recognized prefix) are discarded up to the next
// terminator. Collected text is capped at maxLen with excess dropped.
type Assembler struct {
	state     state
	threshold model.Severity
	severity  model.Severity
	buf       []byte
	maxLen    int
	truncated uint64
}

func New(maxLen int) *Assembler {
	if maxLen <= 0 {
		maxLen = model.MaxLineLen
	}
	return &Assembler{
		threshold: model.SeveritySilent,
		buf:       make([]byte, 0, maxLen),
		maxLen:    maxLen,
	}
}

func (a *Assembler) SetThreshold(threshold model.Severity) {
	a.threshold = threshold
}

func (a *Assembler) Threshold() model.Severity {
	return a.threshold
}

// Feed consumes one byte and reports a completed line when a terminator
// closes a collected, non-empty line. The byte that classified the line is
// also its first content character.
func (a *Assembler) Feed(b byte) (model.LogLine, bool) {
	switch a.state {
	case stateAwaitFirst:
		severity := model.SeverityFromByte(b)
		if severity != model.SeveritySilent && severity <= a.threshold {
			a.state = stateCollecting
			a.severity = severity
			a.buf = a.buf[:0]
			a.buf = append(a.buf, b)
		} else {
			a.state = stateDiscarding
		}
	case stateCollecting:
		if len(a.buf) < a.maxLen {
			a.buf = append(a.buf, b)
		} else if b != '\n' {
			a.truncated++
		}
	case stateDiscarding:
	}

	if b != '\n' {
		return model.LogLine{}, false
	}

	line := model.LogLine{}
	emitted := false
	if a.state == stateCollecting {
		text := stripLineEndings(a.buf)
		if len(text) > 0 {
			line = model.LogLine{Severity: a.severity, Text: text}
			emitted = true
		}
	}
	a.state = stateAwaitFirst
	a.buf = a.buf[:0]
	return line, emitted
}

// Reset abandons any partial line, e.g. when structured sinks are
// reconfigured mid-stream.
func (a *Assembler) Reset() {
	a.state = stateAwaitFirst
	a.buf = a.buf[:0]
}

// Truncated reports how many bytes were dropped past the line cap.
func (a *Assembler) Truncated() uint64 {
	return a.truncated
}

func stripLineEndings(buf []byte) string {
	clean := true
	for _, b := range buf {
		if b == '\n' || b == '\r' {
			clean = false
			break
		}
	}
	if clean {
		return string(buf)
	}
	out := make([]byte, 0, len(buf))
	for _, b := range buf {
		if b == '\n' || b == '\r' {
			continue
		}
		out = append(out, b)
	}
	return string(out)
}

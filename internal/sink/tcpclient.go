package sink

import (
	"net"
	"strconv"
	"sync"
	"time"
)

// TCPClient implements the router's NetClient over a plain TCP connection.
// A background reader feeds the rx buffer so Available/Read never block the
// service tick.
type TCPClient struct {
	dialTimeout time.Duration

	mu   sync.Mutex
	conn net.Conn
	rx   []byte
	gen  int
}

func NewTCPClient(dialTimeout time.Duration) *TCPClient {
	if dialTimeout <= 0 {
		dialTimeout = 2 * time.Second
	}
	return &TCPClient{dialTimeout: dialTimeout}
}

func (c *TCPClient) Connect(host string, port int) bool {
	c.Stop()
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, strconv.Itoa(port)), c.dialTimeout)
	if err != nil {
		return false
	}
	c.mu.Lock()
	c.conn = conn
	c.rx = c.rx[:0]
	c.gen++
	gen := c.gen
	c.mu.Unlock()
	go c.readLoop(conn, gen)
	return true
}

func (c *TCPClient) readLoop(conn net.Conn, gen int) {
	buf := make([]byte, 512)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			c.mu.Lock()
			if c.gen == gen {
				c.rx = append(c.rx, buf[:n]...)
			}
			c.mu.Unlock()
		}
		if err != nil {
			c.mu.Lock()
			if c.gen == gen && c.conn == conn {
				c.conn = nil
			}
			c.mu.Unlock()
			return
		}
	}
}

func (c *TCPClient) Stop() {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.rx = c.rx[:0]
	c.gen++
	c.mu.Unlock()
	if conn != nil {
		_ = conn.Close()
	}
}

func (c *TCPClient) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

func (c *TCPClient) Print(data string) {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return
	}
	_, _ = conn.Write([]byte(data))
}

func (c *TCPClient) Available() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.rx)
}

// Read pops up to len(buf) received bytes. The multiplexer discards them;
// the read exists only to keep the socket drained.
func (c *TCPClient) Read(buf []byte) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := copy(buf, c.rx)
	c.rx = c.rx[:copy(c.rx, c.rx[n:])]
	return n
}

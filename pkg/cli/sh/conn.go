package sh

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/robotalks/ioexpander/pkg/l0/comm"
)

// DefaultTimeout is how long Conn waits for a reply line.
const DefaultTimeout = time.Second

// ErrTimeout indicates no complete reply line arrived in time.
var ErrTimeout = errors.New("reply timeout")

// Conn sends commands to the expander and reads reply lines.
// Port must return (0, nil) when no data arrives within its read timeout.
type Conn struct {
	Port    io.ReadWriter
	Timeout time.Duration
}

// NewConn creates a Conn with DefaultTimeout.
func NewConn(port io.ReadWriter) *Conn {
	return &Conn{Port: port, Timeout: DefaultTimeout}
}

// Do sends a command and waits for its reply.
func (c *Conn) Do(cmd comm.Command) (string, error) {
	return c.Request(cmd.Bytes())
}

// Cancel aborts a partially sent command. No reply is expected.
func (c *Conn) Cancel() error {
	_, err := c.Port.Write([]byte{comm.ESC})
	return err
}

// Request writes raw bytes and waits for one reply line.
func (c *Conn) Request(p []byte) (string, error) {
	if _, err := c.Port.Write(p); err != nil {
		return "", err
	}
	return c.ReadLine()
}

// ReadLine reads until '\n' and strips the line terminator.
func (c *Conn) ReadLine() (string, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	deadline := time.Now().Add(timeout)
	var line []byte
	buf := make([]byte, 1)
	for time.Now().Before(deadline) {
		n, err := c.Port.Read(buf)
		if err != nil {
			return trimLine(line), err
		}
		if n == 0 {
			continue
		}
		if buf[0] == '\n' {
			return trimLine(line), nil
		}
		line = append(line, buf[0])
	}
	return trimLine(line), ErrTimeout
}

func trimLine(line []byte) string {
	return strings.TrimRight(string(line), "\r")
}

package transport

import (
	"github.com/golang/glog"

	"github.com/robotalks/ioexpander/pkg/l0/comm"
)

// UART is a hardware UART driver.
type UART interface {
	// Writable reports the transmitter can take a byte.
	Writable() bool
	// Readable reports received data is pending.
	Readable() bool
	ReadRaw(p []byte) (int, error)
	WriteRaw(p []byte) (int, error)
}

// Console is the Transport over a UART.
// Writes are staged in a RingBuffer and drained on Read.
type Console struct {
	uart   UART
	buffer comm.RingBuffer
}

// NewConsole wraps a UART.
func NewConsole(uart UART) *Console {
	return &Console{uart: uart}
}

// Read implements Transport.
// Pending output is drained first, as far as the transmitter allows.
func (c *Console) Read(p []byte) (int, bool) {
	for c.uart.Writable() && !c.buffer.Empty() {
		b, _ := c.buffer.Get()
		if _, err := c.uart.WriteRaw([]byte{b}); err != nil {
			glog.V(3).Infof("uart: dropped byte: %v", err)
		}
	}
	if !c.uart.Readable() {
		return 0, false
	}
	n, err := c.uart.ReadRaw(p)
	if err != nil {
		glog.V(4).Infof("uart: read: %v", err)
		return 0, false
	}
	if n == 0 {
		return 0, false
	}
	glog.V(2).Infof("uart: RCV %q", p[:n])
	return n, true
}

// Write implements Transport.
func (c *Console) Write(p []byte) {
	for _, b := range p {
		c.buffer.Put(b)
	}
}

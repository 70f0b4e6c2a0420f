package transport

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
)

// TxFIFODepth is the size of the modeled UART transmit FIFO.
const TxFIFODepth = 32

// DefaultReadTimeout bounds how long a host serial read may wait.
const DefaultReadTimeout = time.Millisecond

// ErrNoPort is returned when no device path is configured.
var ErrNoPort = errors.New("serial port not specified")

// SerialConfig describes a host serial port.
type SerialConfig struct {
	Device      string
	Baud        int
	ReadTimeout time.Duration
}

// Open opens the port with 8N1 framing and a read timeout, so reads
// return (0, nil) when nothing arrives in time.
func (c SerialConfig) Open() (serial.Port, error) {
	if c.Device == "" {
		return nil, ErrNoPort
	}
	port, err := serial.Open(c.Device, &serial.Mode{
		BaudRate: c.Baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", c.Device, err)
	}
	timeout := c.ReadTimeout
	if timeout <= 0 {
		timeout = DefaultReadTimeout
	}
	if err = port.SetReadTimeout(timeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", c.Device, err)
	}
	return port, nil
}

// HostSerialDevice is a SerialDevice backed by a host serial port,
// e.g. the CDC-ACM node of a USB gadget or one end of a pty pair.
// Writes go through a TxQueueSize queue drained by a writer goroutine.
type HostSerialDevice struct {
	port io.ReadWriteCloser
	tx   *txQueue
}

// OpenSerialDevice opens a HostSerialDevice.
func OpenSerialDevice(conf SerialConfig) (*HostSerialDevice, error) {
	port, err := conf.Open()
	if err != nil {
		return nil, err
	}
	return newHostSerialDevice(port), nil
}

func newHostSerialDevice(port io.ReadWriteCloser) *HostSerialDevice {
	return &HostSerialDevice{port: port, tx: newTxQueue("usb", port, TxQueueSize)}
}

// Poll implements SerialDevice. The host kernel runs enumeration.
func (d *HostSerialDevice) Poll() bool {
	return true
}

// Read implements SerialDevice.
func (d *HostSerialDevice) Read(p []byte) (int, error) {
	return d.port.Read(p)
}

// Write implements SerialDevice. It returns ErrWouldBlock when the
// transmit queue is full.
func (d *HostSerialDevice) Write(p []byte) (int, error) {
	return d.tx.Write(p)
}

// Close implements io.Closer.
func (d *HostSerialDevice) Close() error {
	d.tx.Close()
	return d.port.Close()
}

// HostUART is a UART backed by a host serial port.
// The transmitter is modeled as a TxFIFODepth FIFO draining at line rate,
// in front of a queue drained by a writer goroutine.
type HostUART struct {
	port     io.ReadWriteCloser
	tx       *txQueue
	baud     int
	credit   int
	lastFill time.Time
	now      func() time.Time
}

// OpenUART opens a HostUART.
func OpenUART(conf SerialConfig) (*HostUART, error) {
	port, err := conf.Open()
	if err != nil {
		return nil, err
	}
	return newHostUART(port, conf.Baud, time.Now), nil
}

func newHostUART(port io.ReadWriteCloser, baud int, now func() time.Time) *HostUART {
	return &HostUART{
		port:     port,
		tx:       newTxQueue("uart", port, TxQueueSize),
		baud:     baud,
		credit:   TxFIFODepth,
		lastFill: now(),
		now:      now,
	}
}

// Writable implements UART.
func (u *HostUART) Writable() bool {
	if u.credit < TxFIFODepth {
		now := u.now()
		// 10 bit times per byte with 8N1 framing.
		drained := int(now.Sub(u.lastFill) * time.Duration(u.baud) / (10 * time.Second))
		if drained > 0 {
			u.credit += drained
			if u.credit > TxFIFODepth {
				u.credit = TxFIFODepth
			}
			u.lastFill = now
		}
	} else {
		u.lastFill = u.now()
	}
	return u.credit > 0
}

// Readable implements UART. Readiness is discovered by a timed read.
func (u *HostUART) Readable() bool {
	return true
}

// ReadRaw implements UART.
func (u *HostUART) ReadRaw(p []byte) (int, error) {
	return u.port.Read(p)
}

// WriteRaw implements UART.
func (u *HostUART) WriteRaw(p []byte) (int, error) {
	if len(p) > u.credit {
		p = p[:u.credit]
	}
	if len(p) == 0 {
		return 0, ErrWouldBlock
	}
	n, err := u.tx.Write(p)
	u.credit -= n
	return n, err
}

// Close implements io.Closer.
func (u *HostUART) Close() error {
	u.tx.Close()
	return u.port.Close()
}

package transport

import (
	"github.com/golang/glog"
)

// SerialDevice is a USB CDC-ACM device driver.
type SerialDevice interface {
	// Poll drives the device state machine once and reports whether the
	// serial class may have data.
	Poll() bool
	Read(p []byte) (int, error)
	// Write returns ErrWouldBlock (or any error) when the transmit
	// buffer is full.
	Write(p []byte) (int, error)
}

// USB is the Transport over a USB virtual serial port.
// It keeps no queue: whatever the device can't take is dropped.
type USB struct {
	device SerialDevice
}

// NewUSB wraps a device.
func NewUSB(device SerialDevice) *USB {
	return &USB{device: device}
}

// Read implements Transport.
func (u *USB) Read(p []byte) (int, bool) {
	if !u.device.Poll() {
		return 0, false
	}
	n, err := u.device.Read(p)
	if err != nil {
		glog.V(4).Infof("usb: read: %v", err)
		return 0, false
	}
	if n == 0 {
		return 0, false
	}
	glog.V(2).Infof("usb: RCV %q", p[:n])
	return n, true
}

// Write implements Transport.
func (u *USB) Write(p []byte) {
	if len(p) == 0 {
		return
	}
	glog.V(2).Infof("usb: SND %q", p)
	for out := p; len(out) > 0; {
		n, err := u.device.Write(out)
		if n > 0 {
			out = out[n:]
		}
		if err != nil || n <= 0 {
			if len(out) > 0 {
				glog.V(3).Infof("usb: dropped %d bytes: %v", len(out), err)
			}
			return
		}
	}
}

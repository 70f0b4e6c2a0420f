// Package expander ties the blinker, the decoder and the transports into
// the I/O expander's cooperative polling loop.
package expander

import (
	"io"

	fx "github.com/robotalks/ioexpander/pkg/framework"
	"github.com/robotalks/ioexpander/pkg/l0/led"
	"github.com/robotalks/ioexpander/pkg/l0/transport"
)

// Peripherals are the drivers the expander takes ownership of at boot.
type Peripherals struct {
	Clock fx.Clock
	Pin   led.Pin
	USB   transport.SerialDevice
	UART  transport.UART
}

// Expander is the long-lived state of the I/O expander.
type Expander struct {
	Clock      fx.Clock
	LED        *led.Blinker
	USB        *transport.USB
	Console    *transport.Console
	Dispatcher *Dispatcher

	ports   []fx.Controller
	closers []io.Closer
}

// New creates an Expander in its power-up state.
func New(p Peripherals) *Expander {
	e := &Expander{
		Clock:   p.Clock,
		LED:     led.NewBlinker(p.Pin),
		USB:     transport.NewUSB(p.USB),
		Console: transport.NewConsole(p.UART),
	}
	e.Dispatcher = &Dispatcher{LED: e.LED}
	e.ports = []fx.Controller{
		NewCommandPort(e.USB, e.Dispatcher),
		&EchoPort{Transport: e.Console},
	}
	for _, drv := range []interface{}{p.USB, p.UART, p.Pin} {
		if c, ok := drv.(io.Closer); ok {
			e.closers = append(e.closers, c)
		}
	}
	return e
}

// AddRemote adds another command Transport with its own decoder.
// It is polled after the UART.
func (e *Expander) AddRemote(t transport.Transport) {
	e.ports = append(e.ports, NewCommandPort(t, e.Dispatcher))
	if c, ok := t.(io.Closer); ok {
		e.closers = append(e.closers, c)
	}
}

// AddToLoop implements LoopAdder.
// The order is fixed: LED, USB, UART, then remotes.
func (e *Expander) AddToLoop(l *fx.Loop) {
	l.Add(e.LED)
	l.AddController(fx.PrLvControl, e.ports[0])
	l.AddController(fx.PrLvAcuate, e.ports[1])
	if len(e.ports) > 2 {
		l.AddController(fx.PrLvIdle, e.ports[2:]...)
	}
}

// NewLoop creates a Loop running the expander.
func (e *Expander) NewLoop() *fx.Loop {
	return fx.NewLoop(e.Clock).Add(e)
}

// Close releases the drivers.
func (e *Expander) Close() error {
	return fx.CloseAll(e.closers...)
}

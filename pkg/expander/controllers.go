package expander

import (
	fx "github.com/robotalks/ioexpander/pkg/framework"
	"github.com/robotalks/ioexpander/pkg/l0/comm"
	"github.com/robotalks/ioexpander/pkg/l0/transport"
)

// Buffer sizes processed per iteration.
const (
	CommandBufferSize = 64
	EchoBufferSize    = 16
)

// CommandPort decodes commands from a Transport and writes back responses.
type CommandPort struct {
	Transport  transport.Transport
	Decoder    *comm.Decoder
	Dispatcher *Dispatcher

	buffer [CommandBufferSize]byte
}

// NewCommandPort creates a CommandPort with an idle decoder.
func NewCommandPort(t transport.Transport, d *Dispatcher) *CommandPort {
	return &CommandPort{Transport: t, Decoder: comm.NewDecoder(), Dispatcher: d}
}

// Control implements Controller.
func (p *CommandPort) Control(fx.ControlContext) error {
	n, ok := p.Transport.Read(p.buffer[:])
	if !ok {
		return nil
	}
	for _, c := range p.buffer[:n] {
		r := p.Decoder.Run(c)
		switch r.Kind {
		case comm.ResultText:
			if len(r.Text) > 0 {
				p.Transport.Write([]byte(r.Text))
			}
		case comm.ResultCommand:
			p.Transport.Write([]byte(p.Dispatcher.Dispatch(r.Command)))
		}
	}
	return nil
}

// EchoPort writes everything received on a Transport back to it.
type EchoPort struct {
	Transport transport.Transport

	buffer [EchoBufferSize]byte
}

// Control implements Controller.
func (p *EchoPort) Control(fx.ControlContext) error {
	if n, ok := p.Transport.Read(p.buffer[:]); ok && n > 0 {
		p.Transport.Write(p.buffer[:n])
	}
	return nil
}

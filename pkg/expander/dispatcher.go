package expander

import (
	"fmt"

	"github.com/robotalks/ioexpander/pkg/l0/comm"
)

// LED is what the dispatcher needs from the blinker.
type LED interface {
	IsOn() bool
	Rate() uint64
	SetRate(ms uint64)
}

// Status is a snapshot of the LED.
type Status struct {
	On   bool
	Rate uint64
}

// StatusReporter receives a Status after every Led or Status command.
type StatusReporter interface {
	ReportStatus(Status)
}

// Dispatcher executes decoded commands.
type Dispatcher struct {
	LED      LED
	Reporter StatusReporter
}

// Dispatch runs the command and returns the response line.
// Valve is decoded but has no actuator yet, so it's echoed back.
func (d *Dispatcher) Dispatch(cmd comm.Command) string {
	var resp string
	switch cmd.Kind {
	case comm.Led:
		d.LED.SetRate(uint64(cmd.Value))
		resp = "LA\r\n"
	case comm.Status:
		resp = fmt.Sprintf("SL v%d r%d\r\n", boolToInt(d.LED.IsOn()), d.LED.Rate())
	default:
		return fmt.Sprintf("run_command(command: '%s' target: '%d' value: '%d')\r\n",
			cmd.Kind, cmd.Target, cmd.Value)
	}
	if d.Reporter != nil {
		d.Reporter.ReportStatus(Status{On: d.LED.IsOn(), Rate: d.LED.Rate()})
	}
	return resp
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

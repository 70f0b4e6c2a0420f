// Package expander adds the I/O expander commands to the shell.
package expander

import (
	"errors"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/ioexpander/pkg/cli/sh"
	"github.com/robotalks/ioexpander/pkg/l0/comm"
)

var errTargetRange = errors.New("TARGET must be 0-9")

var (
	// StatusCmd queries LED status.
	StatusCmd = ishell.Cmd{
		Name:    "status",
		Aliases: []string{"s"},
		Help:    "",
		Func: func(c *ishell.Context) {
			sh.DoCommand(c, comm.Command{Kind: comm.Status})
		},
	}

	// LedCmd sets the blink rate.
	LedCmd = ishell.Cmd{
		Name:    "led",
		Aliases: []string{"l"},
		Help:    "RATE(ms), 0 turns off",
		Func: func(c *ishell.Context) {
			rate, ok := sh.ArgUint(c, 0, "RATE", 16)
			if !ok {
				return
			}
			sh.DoCommand(c, comm.Command{Kind: comm.Led, Value: uint16(rate)})
		},
	}

	// ValveCmd sends a valve command.
	ValveCmd = ishell.Cmd{
		Name:    "valve",
		Aliases: []string{"v"},
		Help:    "TARGET(0-9) VALUE",
		Func: func(c *ishell.Context) {
			target, ok := sh.ArgUint(c, 0, "TARGET", 8)
			if !ok {
				return
			}
			if target > 9 {
				c.Err(errTargetRange)
				return
			}
			value, ok := sh.ArgUint(c, 1, "VALUE", 16)
			if !ok {
				return
			}
			sh.DoCommand(c, comm.Command{Kind: comm.Valve, Target: uint8(target), Value: uint16(value)})
		},
	}

	// CancelCmd aborts a partial command.
	CancelCmd = ishell.Cmd{
		Name: "cancel",
		Help: "",
		Func: func(c *ishell.Context) {
			if err := sh.ShellFrom(c).Conn.Cancel(); err != nil {
				c.Err(err)
			}
		},
	}

	// RawCmd sends text as is, terminated with CR.
	RawCmd = ishell.Cmd{
		Name: "raw",
		Help: "TEXT",
		Func: func(c *ishell.Context) {
			text := strings.Join(c.Args, " ") + string(comm.Terminator)
			reply, err := sh.ShellFrom(c).Conn.Request([]byte(text))
			if err != nil && err != sh.ErrTimeout {
				c.Err(err)
				return
			}
			if reply != "" {
				c.Println(reply)
			}
		},
	}
)

func init() {
	sh.AddCmds(&StatusCmd, &LedCmd, &ValveCmd, &CancelCmd, &RawCmd)
}

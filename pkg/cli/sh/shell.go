package sh

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/ioexpander/pkg/l0/comm"
	"github.com/robotalks/ioexpander/pkg/l0/transport"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool

	Shell *ishell.Shell
	Conn  *Conn
}

const shellKey = "$shell"

var (
	// flags

	evalOnly bool
	portConf = transport.SerialConfig{Baud: 115200}
	timeout  = DefaultTimeout

	commands []*ishell.Cmd
)

func init() {
	if val := os.Getenv("IOX_USB_PORT"); val != "" {
		portConf.Device = val
	}
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.StringVar(&portConf.Device, "port", portConf.Device, "Serial port of the expander.")
	flag.IntVar(&portConf.Baud, "baud", portConf.Baud, "Baud rate.")
	flag.DurationVar(&timeout, "timeout", timeout, "Reply timeout.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conn *Conn) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		Shell:       ishell.New(),
		Conn:        conn,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt("iox > ")
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// DoCommand sends a command and prints the reply.
func DoCommand(c *ishell.Context, cmd comm.Command) error {
	reply, err := ShellFrom(c).Conn.Do(cmd)
	if err != nil {
		c.Err(err)
		return err
	}
	c.Println(reply)
	return nil
}

// ArgUint parses the n-th argument as an unsigned number of bitSize bits.
func ArgUint(c *ishell.Context, n int, name string, bitSize int) (uint64, bool) {
	if len(c.Args) <= n {
		c.Err(fmt.Errorf("%s required", name))
		return 0, false
	}
	val, err := strconv.ParseUint(c.Args[n], 10, bitSize)
	if err != nil {
		c.Err(fmt.Errorf("invalid %s: %v", name, err))
		return 0, false
	}
	return val, true
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	port, err := portConf.Open()
	if err != nil {
		log.Fatalln(err)
	}
	defer port.Close()
	conn := NewConn(port)
	conn.Timeout = timeout
	New(conn).Run(flag.Args()...)
}

package comm

import "fmt"

// CommandKind identifies a protocol command.
type CommandKind int

// Command kinds.
const (
	Status CommandKind = iota
	Valve
	Led
)

// String implements fmt.Stringer.
func (k CommandKind) String() string {
	switch k {
	case Status:
		return "Status"
	case Valve:
		return "Valve"
	case Led:
		return "Led"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// Command is a fully decoded command.
// Target is only meaningful for Valve, and Value is unused by Status.
type Command struct {
	Kind   CommandKind
	Target uint8
	Value  uint16
}

// ESC cancels an in-progress command.
const ESC byte = 0x1b

// Terminator is what Bytes appends after a value.
const Terminator byte = '\r'

// Bytes encodes the command the way a host sends it.
func (c Command) Bytes() []byte {
	switch c.Kind {
	case Status:
		return []byte{'S'}
	case Valve:
		return []byte(fmt.Sprintf("V%d%d%c", c.Target%10, c.Value, Terminator))
	case Led:
		return []byte(fmt.Sprintf("L%d%c", c.Value, Terminator))
	}
	return nil
}

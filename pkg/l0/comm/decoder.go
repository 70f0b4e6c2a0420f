package comm

import "fmt"

// DecodeState is the state of the Decoder.
type DecodeState int

const (
	// StateCommand waits for a command letter. This is the idle state.
	StateCommand DecodeState = iota
	// StateTarget waits for the target digit of a Valve command.
	StateTarget
	// StateNextValue waits for the first digit of a value.
	StateNextValue
	// StateValue accumulates value digits until a terminator.
	StateValue
)

// ResultKind tells which field of DecodeResult is valid.
type ResultKind int

const (
	// ResultNone means the byte was consumed without output.
	ResultNone ResultKind = iota
	// ResultText carries a diagnostic line in Text.
	ResultText
	// ResultCommand carries a completed command in Command.
	ResultCommand
)

// MaxTextLen bounds the length of diagnostic text.
const MaxTextLen = 64

// DecodeResult is the outcome of feeding one byte to the Decoder.
type DecodeResult struct {
	Kind    ResultKind
	Text    string
	Command Command
}

// Decoder parses the command protocol one byte at a time.
// The zero value is ready to use and idle.
type Decoder struct {
	state   DecodeState
	command CommandKind
	target  uint8
	value   uint16
}

// NewDecoder creates an idle Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// State gets the current state.
func (d *Decoder) State() DecodeState {
	return d.state
}

// Run consumes one byte.
//
// The pending command, target and value are not cleared after a command is
// emitted; the next parse overwrites them. Value digits accumulate in 16 bits
// and wrap on overflow.
func (d *Decoder) Run(c byte) DecodeResult {
	switch d.state {
	case StateCommand:
		switch {
		case c == 's' || c == 'S':
			return commandResult(Command{Kind: Status})
		case c == 'v' || c == 'V':
			d.command, d.state = Valve, StateTarget
		case c == 'l' || c == 'L':
			d.command, d.state = Led, StateNextValue
		case isControl(c):
		default:
			return textResult("Err: unrecognised '%s'\r\n", c)
		}
	case StateTarget:
		switch {
		case c == ESC:
			d.state = StateCommand
		case isDigit(c):
			d.target, d.state = c-'0', StateNextValue
		case isControl(c):
		default:
			d.state = StateCommand
			return textResult("Err: bad target '%s'\r\n", c)
		}
	case StateNextValue:
		switch {
		case c == ESC:
			d.state = StateCommand
		case isDigit(c):
			d.value, d.state = uint16(c-'0'), StateValue
		}
	case StateValue:
		switch {
		case c == ESC:
			d.state = StateCommand
		case isDigit(c):
			d.value = d.value*10 + uint16(c-'0')
		default:
			d.state = StateCommand
			return commandResult(Command{Kind: d.command, Target: d.target, Value: d.value})
		}
	}
	return DecodeResult{}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// control codes, ESC included.
func isControl(c byte) bool {
	return c < 32
}

func commandResult(cmd Command) DecodeResult {
	return DecodeResult{Kind: ResultCommand, Command: cmd}
}

// the offending byte is echoed as is, bytes >= 0x80 included.
func textResult(format string, c byte) DecodeResult {
	text := fmt.Sprintf(format, []byte{c})
	if len(text) > MaxTextLen {
		text = text[:MaxTextLen]
	}
	return DecodeResult{Kind: ResultText, Text: text}
}

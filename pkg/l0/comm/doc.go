// Package comm provides L0 protocol support.
package comm

// L0 protocol is a tiny ASCII command protocol spoken between a host and the
// I/O expander over a byte stream (USB virtual serial port or MQTT).
//
// A command starts with a case-insensitive letter:
//
//	S              status query, executed on the letter itself
//	V <t> <v..> X  valve command, one target digit then a value
//	L <v..> X      LED blink rate in milliseconds, 0 turns the LED off
//
// where X is any non-digit terminator. ESC (0x1b) after the leading letter
// cancels the command. The decoder is single pass and consumes one byte at a
// time so it can be driven directly from a polling loop.
//
// Producer: host
// Consumer: I/O expander

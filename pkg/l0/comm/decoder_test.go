package comm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type decoderTestSequence struct {
	in     []byte
	expect DecodeResult
	final  DecodeResult
	state  DecodeState
}

type decoderTestSequenceBuilder struct {
	seq []decoderTestSequence
}

func decoderTestSequences() *decoderTestSequenceBuilder {
	return &decoderTestSequenceBuilder{}
}

func (b *decoderTestSequenceBuilder) on(in ...byte) *decoderTestSequenceBuilder {
	b.seq = append(b.seq, decoderTestSequence{in: in, state: StateCommand})
	return b
}

func (b *decoderTestSequenceBuilder) onText(text string) *decoderTestSequenceBuilder {
	return b.on([]byte(text)...)
}

func (b *decoderTestSequenceBuilder) final(r DecodeResult) *decoderTestSequenceBuilder {
	b.seq[len(b.seq)-1].final = r
	return b
}

func (b *decoderTestSequenceBuilder) command(kind CommandKind, target uint8, value uint16) *decoderTestSequenceBuilder {
	return b.final(DecodeResult{Kind: ResultCommand, Command: Command{Kind: kind, Target: target, Value: value}})
}

func (b *decoderTestSequenceBuilder) text(text string) *decoderTestSequenceBuilder {
	return b.final(DecodeResult{Kind: ResultText, Text: text})
}

func (b *decoderTestSequenceBuilder) in(state DecodeState) *decoderTestSequenceBuilder {
	b.seq[len(b.seq)-1].state = state
	return b
}

func (b *decoderTestSequenceBuilder) build() []decoderTestSequence {
	return b.seq
}

func TestDecoder(t *testing.T) {
	testCases := []struct {
		name string
		seq  []decoderTestSequence
	}{
		{
			name: "status",
			seq: decoderTestSequences().
				onText("s").command(Status, 0, 0).
				onText("S").command(Status, 0, 0).
				build(),
		},
		{
			name: "valve",
			seq: decoderTestSequences().
				onText("v1100\n").command(Valve, 1, 100).
				onText("V9").in(StateNextValue).
				onText("7x").command(Valve, 9, 7).
				build(),
		},
		{
			name: "led",
			seq: decoderTestSequences().
				onText("l50\n").command(Led, 0, 50).
				onText("L0\r").command(Led, 0, 0).
				build(),
		},
		{
			name: "led skips non digits before value",
			seq: decoderTestSequences().
				onText("l  =").in(StateNextValue).
				onText("25 ").command(Led, 0, 25).
				build(),
		},
		{
			name: "cancel in target",
			seq: decoderTestSequences().
				on('v', ESC).
				onText("s").command(Status, 0, 0).
				build(),
		},
		{
			name: "cancel in next value",
			seq: decoderTestSequences().
				on('v', '2', ESC).
				on('l', ESC).
				onText("l7\n").command(Led, 2, 7).
				build(),
		},
		{
			name: "cancel in value",
			seq: decoderTestSequences().
				on('l', '1', '2', ESC).
				onText("l3\n").command(Led, 0, 3).
				build(),
		},
		{
			name: "control codes ignored",
			seq: decoderTestSequences().
				on(0, '\r', '\n', ESC, 31).
				on('v', '\n', 0).in(StateTarget).
				onText("45\r").command(Valve, 4, 5).
				build(),
		},
		{
			name: "unrecognised",
			seq: decoderTestSequences().
				onText("x").text("Err: unrecognised 'x'\r\n").
				onText("l5\n").command(Led, 0, 5).
				build(),
		},
		{
			name: "high bytes echoed raw",
			seq: decoderTestSequences().
				on(0xe9).text("Err: unrecognised '\xe9'\r\n").
				on('v', 0x80).text("Err: bad target '\x80'\r\n").
				on(127).text("Err: unrecognised '\x7f'\r\n").
				build(),
		},
		{
			name: "bad target",
			seq: decoderTestSequences().
				onText("vx").text("Err: bad target 'x'\r\n").
				onText("v12\n").command(Valve, 1, 2).
				build(),
		},
		{
			name: "value wraps at 16 bits",
			seq: decoderTestSequences().
				onText("l65535\n").command(Led, 0, 65535).
				onText("l65536\n").command(Led, 0, 0).
				onText("l100000\n").command(Led, 0, 34464).
				build(),
		},
		{
			name: "target persists",
			seq: decoderTestSequences().
				onText("v3100\n").command(Valve, 3, 100).
				onText("l9\n").command(Led, 3, 9).
				build(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			decoder := NewDecoder()
			for n, s := range tc.seq {
				var r DecodeResult
				for i, b := range s.in {
					r = decoder.Run(b)
					if i+1 < len(s.in) {
						require.Equalf(t, s.expect, r, "seq[%d][%d] expect mismatch", n, i)
					}
				}
				require.Equalf(t, s.final, r, "seq[%d] final mismatch", n)
				require.Equalf(t, s.state, decoder.State(), "seq[%d] state mismatch", n)
			}
		})
	}
}

func TestDecoderStatusOnLetter(t *testing.T) {
	var decoder Decoder
	r := decoder.Run('s')
	require.Equal(t, ResultCommand, r.Kind)
	require.Equal(t, Command{Kind: Status}, r.Command)
	require.Equal(t, StateCommand, decoder.State())
}

func TestDecoderValveWaitsForTerminator(t *testing.T) {
	decoder := NewDecoder()
	var results []DecodeResult
	for _, b := range []byte("v1100\n") {
		if r := decoder.Run(b); r.Kind != ResultNone {
			results = append(results, r)
		}
	}
	require.Len(t, results, 1)
	require.Equal(t, Command{Kind: Valve, Target: 1, Value: 100}, results[0].Command)
}

func TestDecoderEscapeNeverEmits(t *testing.T) {
	for _, prefix := range []string{"v", "v1", "v12", "l", "l1"} {
		t.Run(prefix, func(t *testing.T) {
			decoder := NewDecoder()
			for _, b := range []byte(prefix) {
				require.Equal(t, ResultKind(ResultNone), decoder.Run(b).Kind)
			}
			require.Equal(t, DecodeResult{}, decoder.Run(ESC))
			require.Equal(t, StateCommand, decoder.State())
		})
	}
}

func TestDecoderTextBounded(t *testing.T) {
	decoder := NewDecoder()
	for c := 32; c < 256; c++ {
		r := decoder.Run(byte(c))
		if r.Kind == ResultText {
			require.True(t, len(r.Text) <= MaxTextLen)
		}
		decoder.Run(ESC)
	}
}

func TestCommandKindString(t *testing.T) {
	require.Equal(t, "Status", Status.String())
	require.Equal(t, "Valve", Valve.String())
	require.Equal(t, "Led", Led.String())
	require.Equal(t, "CommandKind(7)", CommandKind(7).String())
}

func TestCommandBytes(t *testing.T) {
	testCases := []Command{
		{Kind: Status},
		{Kind: Valve, Target: 4, Value: 1234},
		{Kind: Led, Value: 250},
	}
	for _, cmd := range testCases {
		t.Run(cmd.Kind.String(), func(t *testing.T) {
			decoder := NewDecoder()
			var r DecodeResult
			for _, b := range cmd.Bytes() {
				r = decoder.Run(b)
			}
			require.Equal(t, ResultCommand, r.Kind)
			require.Equal(t, cmd, r.Command)
		})
	}
	require.Equal(t, []byte("L250\r"), Command{Kind: Led, Value: 250}.Bytes())
}

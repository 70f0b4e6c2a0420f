package led

import (
	"testing"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/ioexpander/pkg/framework"
)

func TestBlinkerDefaults(t *testing.T) {
	b := NewBlinker(NewMemPin("led"))
	require.Equal(t, uint64(DefaultRate), b.Rate())
	require.False(t, b.IsOn())
}

func TestBlinkerOff(t *testing.T) {
	pin := NewMemPin("led")
	require.NoError(t, pin.Set(true))
	b := NewBlinker(pin)
	b.SetRate(0)
	for ms := uint64(0); ms < 10000; ms += 250 {
		require.NoError(t, b.Tick(fx.InstantFromMillis(ms)))
		require.False(t, b.IsOn())
	}
}

func TestBlinkerToggleEveryPeriod(t *testing.T) {
	testCases := []uint64{1, 10, 100, 500}
	for _, rate := range testCases {
		pin := NewMemPin("led")
		b := NewBlinker(pin)
		b.SetRate(rate)
		// strictly more than rate ms must elapse, so 1 ms steps give
		// one toggle per rate+1 ms.
		for ms := uint64(0); ms <= 100*(rate+1); ms++ {
			require.NoError(t, b.Tick(fx.InstantFromMillis(ms)))
		}
		require.Equalf(t, 100, pin.Toggles(), "rate %d", rate)
	}
}

func TestBlinkerSyntheticTimestamps(t *testing.T) {
	pin := NewMemPin("led")
	b := NewBlinker(pin)
	b.SetRate(200)

	require.NoError(t, b.Tick(fx.InstantFromMillis(200)))
	require.False(t, b.IsOn())
	require.NoError(t, b.Tick(fx.InstantFromMillis(201)))
	require.True(t, b.IsOn())
	require.NoError(t, b.Tick(fx.InstantFromMillis(401)))
	require.True(t, b.IsOn())
	require.NoError(t, b.Tick(fx.InstantFromMillis(402)))
	require.False(t, b.IsOn())
	require.Equal(t, 2, pin.Toggles())
}

func TestBlinkerWraparound(t *testing.T) {
	pin := NewMemPin("led")
	b := NewBlinker(pin)
	b.SetRate(1)
	last := fx.Instant(^uint64(0) - 500)
	b.last = last
	require.NoError(t, b.Tick(last+1000))
	require.Equal(t, 0, pin.Toggles())
	require.NoError(t, b.Tick(last+2001))
	require.Equal(t, 1, pin.Toggles())
}

func TestBlinkerResumeAfterOff(t *testing.T) {
	pin := NewMemPin("led")
	b := NewBlinker(pin)
	require.NoError(t, b.Tick(fx.InstantFromMillis(501)))
	require.True(t, b.IsOn())
	b.SetRate(0)
	require.NoError(t, b.Tick(fx.InstantFromMillis(502)))
	require.False(t, b.IsOn())
	b.SetRate(50)
	require.NoError(t, b.Tick(fx.InstantFromMillis(552)))
	require.True(t, b.IsOn())
}

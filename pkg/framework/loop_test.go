package framework

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testClock struct {
	now   Instant
	calls int
}

func (c *testClock) Now() Instant {
	c.calls++
	return c.now
}

func TestLoopIterationOrder(t *testing.T) {
	clock := &testClock{now: 42}
	var order []string
	record := func(name string) Controller {
		return ControlFunc(func(cc ControlContext) error {
			require.Equal(t, Instant(42), cc.Time())
			order = append(order, name)
			return nil
		})
	}
	loop := NewLoop(clock).
		AddController(PrLvAcuate, record("uart")).
		AddController(PrLvSense, record("led")).
		AddController(PrLvControl, record("usb"), record("dispatch"))
	loop.RunIteration(context.Background())
	require.Equal(t, []string{"led", "usb", "dispatch", "uart"}, order)
	require.Equal(t, 1, clock.calls)
}

func TestLoopContinuesOnError(t *testing.T) {
	var ran bool
	loop := NewLoop(&testClock{}).
		AddController(PrLvTop, ControlFunc(func(ControlContext) error { return errors.New("boom") })).
		AddController(PrLvIdle, ControlFunc(func(cc ControlContext) error {
			ran = true
			require.Equal(t, PrLvIdle, cc.PriorityLevel())
			return nil
		}))
	loop.RunIteration(context.Background())
	require.True(t, ran)
}

func TestLoopRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var count int
	loop := NewLoop(&testClock{})
	loop.Interval = time.Millisecond
	loop.AddController(PrLvNormal, ControlFunc(func(ControlContext) error {
		if count++; count == 3 {
			cancel()
		}
		return nil
	}))
	err := loop.Run(ctx)
	require.Equal(t, context.Canceled, err)
	require.Equal(t, 3, count)
}

func TestInstantWraparound(t *testing.T) {
	last := Instant(^uint64(0) - 999)
	now := Instant(1000)
	require.Equal(t, uint64(2), now.Sub(last).Millis())
	require.Equal(t, Instant(5000), InstantFromMillis(5))
}

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	require.NoError(t, errs.Add(nil).Aggregate())
	errs.Add(errors.New("a"))
	require.EqualError(t, errs.Aggregate(), "a")
	errs.Add(errors.New("b"))
	require.EqualError(t, errs.Aggregate(), "multiple errors:\na\nb")
}

type testCloser struct {
	err    error
	closed bool
}

func (c *testCloser) Close() error {
	c.closed = true
	return c.err
}

func TestCloseAll(t *testing.T) {
	a, b := &testCloser{}, &testCloser{err: errors.New("b")}
	require.EqualError(t, CloseAll(a, b), "b")
	require.True(t, a.closed)
	require.True(t, b.closed)
}

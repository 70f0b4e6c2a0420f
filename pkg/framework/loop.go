package framework

import (
	"context"
	"time"

	"github.com/golang/glog"
)

// Loop is a cooperative scheduler.
// Each iteration samples the clock once and runs all controllers in
// priority order, and in the order they were added within a level.
// Nothing runs concurrently with an iteration.
type Loop struct {
	// Clock is sampled at the start of every iteration.
	Clock Clock
	// Interval is the pause between iterations, 0 to spin.
	Interval time.Duration

	controllers [PriorityLevels][]Controller
}

// LoopAdder provides specific logic to add components to loop.
type LoopAdder interface {
	AddToLoop(*Loop)
}

type loopIteration struct {
	ctx           context.Context
	time          Instant
	priorityLevel int
}

// NewLoop creates a Loop.
func NewLoop(clock Clock) *Loop {
	return &Loop{Clock: clock}
}

// Add adds LoopAdders.
func (l *Loop) Add(adders ...LoopAdder) *Loop {
	for _, adder := range adders {
		adder.AddToLoop(l)
	}
	return l
}

// AddController registers controllers to the loop.
func (l *Loop) AddController(priorityLevel int, ctls ...Controller) *Loop {
	l.controllers[priorityLevel] = append(l.controllers[priorityLevel], ctls...)
	return l
}

// Run implements Runnable. It only returns when ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	var timer *time.Timer
	if l.Interval > 0 {
		timer = time.NewTimer(l.Interval)
		defer timer.Stop()
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		l.RunIteration(ctx)
		if timer == nil {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			timer.Reset(l.Interval)
		}
	}
}

// RunIteration runs all controllers once.
func (l *Loop) RunIteration(ctx context.Context) {
	iter := &loopIteration{ctx: ctx, time: l.Clock.Now()}
	for i := 0; i < PriorityLevels; i++ {
		iter.priorityLevel = i
		for _, ctl := range l.controllers[i] {
			if err := ctl.Control(iter); err != nil {
				glog.Errorf("controller error: %v", err)
			}
		}
	}
}

func (t *loopIteration) Context() context.Context {
	return t.ctx
}

func (t *loopIteration) Time() Instant {
	return t.time
}

func (t *loopIteration) PriorityLevel() int {
	return t.priorityLevel
}

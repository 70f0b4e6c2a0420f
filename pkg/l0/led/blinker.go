// Package led blinks an output pin at a configurable rate.
package led

import (
	"github.com/golang/glog"

	fx "github.com/robotalks/ioexpander/pkg/framework"
)

// DefaultRate is the blink period after power-up, in milliseconds.
const DefaultRate = 500

// Blinker toggles a Pin every Rate milliseconds.
type Blinker struct {
	pin  Pin
	rate uint64
	last fx.Instant
}

// NewBlinker creates a Blinker with DefaultRate.
func NewBlinker(pin Pin) *Blinker {
	return &Blinker{pin: pin, rate: DefaultRate}
}

// Rate gets the blink period in milliseconds. 0 means off.
func (b *Blinker) Rate() uint64 {
	return b.rate
}

// SetRate sets the blink period in milliseconds. 0 forces the LED off.
func (b *Blinker) SetRate(ms uint64) {
	b.rate = ms
}

// IsOn reads the current level from the pin.
func (b *Blinker) IsOn() bool {
	on, err := b.pin.Get()
	if err != nil {
		glog.Warningf("led: read pin: %v", err)
	}
	return on
}

// Tick advances the blinker to now.
func (b *Blinker) Tick(now fx.Instant) error {
	if b.rate == 0 {
		return b.pin.Set(false)
	}
	if now.Sub(b.last).Millis() > b.rate {
		b.last = now
		return b.toggle()
	}
	return nil
}

func (b *Blinker) toggle() error {
	on, err := b.pin.Get()
	if err != nil {
		return err
	}
	return b.pin.Set(!on)
}

// Control implements Controller.
func (b *Blinker) Control(cc fx.ControlContext) error {
	return b.Tick(cc.Time())
}

// AddToLoop implements LoopAdder.
func (b *Blinker) AddToLoop(l *fx.Loop) {
	l.AddController(fx.PrLvSense, b)
}

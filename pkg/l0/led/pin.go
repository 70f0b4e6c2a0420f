package led

import (
	"github.com/golang/glog"
)

// Pin is a digital output which can read back its level.
type Pin interface {
	Set(high bool) error
	Get() (bool, error)
}

// MemPin is a Pin that keeps its level in memory.
type MemPin struct {
	Name string

	high    bool
	toggles int
}

// NewMemPin creates a MemPin which is low.
func NewMemPin(name string) *MemPin {
	return &MemPin{Name: name}
}

// Set implements Pin.
func (p *MemPin) Set(high bool) error {
	if p.high != high {
		p.toggles++
		glog.V(3).Infof("pin %s: %v", p.Name, high)
	}
	p.high = high
	return nil
}

// Get implements Pin.
func (p *MemPin) Get() (bool, error) {
	return p.high, nil
}

// Toggles counts the level changes so far.
func (p *MemPin) Toggles() int {
	return p.toggles
}

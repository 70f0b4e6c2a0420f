// Package env builds the expander from configuration.
package env

import (
	"fmt"
	"io"

	"github.com/golang/glog"

	"github.com/robotalks/ioexpander/pkg/expander"
	fx "github.com/robotalks/ioexpander/pkg/framework"
	"github.com/robotalks/ioexpander/pkg/l0/led"
	"github.com/robotalks/ioexpander/pkg/l0/transport"
	"github.com/robotalks/ioexpander/pkg/l1/mqtt"
)

// Description is published in the device meta.
const Description = "Pico I/O Expander"

// Env is the initialized expander and its optional MQTT presence.
type Env struct {
	Config   *Config
	Expander *expander.Expander
	Device   *mqtt.Device
}

// NewEnv opens every peripheral. Nothing is left open on error.
func (c *Config) NewEnv() (*Env, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	usb, err := transport.OpenSerialDevice(transport.SerialConfig{
		Device:      c.USB.Device,
		Baud:        c.USB.Baud,
		ReadTimeout: c.USB.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("usb: %w", err)
	}
	uart, err := transport.OpenUART(transport.SerialConfig{
		Device:      c.UART.Device,
		Baud:        c.UART.Baud,
		ReadTimeout: c.UART.ReadTimeout,
	})
	if err != nil {
		usb.Close()
		return nil, fmt.Errorf("uart: %w", err)
	}
	env := &Env{
		Config: c,
		Expander: expander.New(expander.Peripherals{
			Clock: fx.NewMonotonicClock(),
			Pin:   led.NewMemPin("led_green"),
			USB:   usb,
			UART:  uart,
		}),
	}
	if c.MQTT.BrokerURL != "" {
		if err = env.connectMQTT(); err != nil {
			env.Close()
			return nil, fmt.Errorf("mqtt: %w", err)
		}
	}
	return env, nil
}

func (e *Env) connectMQTT() error {
	q, err := mqtt.NewQueueFromURL(e.Config.MQTT.BrokerURL)
	if err != nil {
		return err
	}
	dev := mqtt.NewDevice(q, e.Config.MQTT.ID)
	if err = dev.Connect(Description); err != nil {
		return err
	}
	glog.Infof("mqtt: connected as %s", dev.Topic(""))
	e.Device = dev
	e.Expander.AddRemote(dev.Transport)
	e.Expander.Dispatcher.Reporter = dev
	return nil
}

// MustNewEnv creates Env and halts on error.
func (c *Config) MustNewEnv() *Env {
	env, err := c.NewEnv()
	if err != nil {
		glog.Fatalf("init failed: %v", err)
	}
	return env
}

// NewLoop creates the loop running the expander.
func (e *Env) NewLoop() *fx.Loop {
	loop := e.Expander.NewLoop()
	loop.Interval = e.Config.Interval
	return loop
}

// Close releases all peripherals.
func (e *Env) Close() error {
	closers := []io.Closer{e.Expander}
	if e.Device != nil {
		closers = append(closers, e.Device)
	}
	return fx.CloseAll(closers...)
}

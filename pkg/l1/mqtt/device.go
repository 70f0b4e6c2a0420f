// Package mqtt exposes the expander on an MQTT broker: a remote command
// console and LED status telemetry.
package mqtt

import (
	"github.com/golang/glog"

	"github.com/robotalks/ioexpander/pkg/expander"
	"github.com/robotalks/ioexpander/pkg/l1/msgs"
)

// DeviceType is the first topic level after the prefix.
const DeviceType = "ioexpander"

// Topic suffixes under <prefix>ioexpander/<id>/.
const (
	TopicCmd    = "cmd"
	TopicMsg    = "msg"
	TopicStatus = "status"
	TopicMeta   = "meta"
)

// Device is the expander's presence on MQTT.
type Device struct {
	Queue     *Queue
	ID        string
	Transport *Transport

	seq uint32
}

// NewDevice creates the Device over a queue. The queue is not connected.
func NewDevice(q *Queue, id string) *Device {
	d := &Device{Queue: q, ID: id}
	d.Transport = NewTransport(q, d.Topic(TopicCmd), d.Topic(TopicMsg))
	return d
}

// Topic builds a topic of this device, without the queue prefix.
func (d *Device) Topic(suffix string) string {
	return DeviceType + "/" + d.ID + "/" + suffix
}

// Connect connects the queue and publishes the retained meta.
func (d *Device) Connect(description string) error {
	if err := d.Queue.Connect(); err != nil {
		return err
	}
	payload, err := msgs.Encode(&msgs.DeviceMeta{ID: d.ID, Description: description})
	if err != nil {
		return err
	}
	d.Queue.PubWith(d.Topic(TopicMeta), payload, 0, true)
	return nil
}

// ReportStatus implements expander.StatusReporter.
func (d *Device) ReportStatus(s expander.Status) {
	d.seq++
	payload, err := msgs.Encode(&msgs.LedStatus{On: s.On, Rate: s.Rate, Seq: d.seq})
	if err != nil {
		glog.Errorf("mqtt: encode status: %v", err)
		return
	}
	d.Queue.PubWith(d.Topic(TopicStatus), payload, 0, true)
}

// Close implements io.Closer.
func (d *Device) Close() error {
	return d.Queue.Close()
}

package mqtt

import (
	"github.com/golang/glog"
)

// RxQueueSize is the number of received payloads buffered for Read.
const RxQueueSize = 16

// Transport carries the command protocol over MQTT.
// Payloads published to the command topic are read as a byte stream
// and writes are published to the reply topic.
type Transport struct {
	queue    *Queue
	pubTopic string
	rxCh     chan []byte
	pending  []byte
}

// NewTransport subscribes subTopic and replies on pubTopic.
func NewTransport(q *Queue, subTopic, pubTopic string) *Transport {
	t := &Transport{
		queue:    q,
		pubTopic: pubTopic,
		rxCh:     make(chan []byte, RxQueueSize),
	}
	q.Sub(subTopic, t.receive)
	return t
}

func (t *Transport) receive(topic string, payload []byte) {
	if len(payload) == 0 {
		return
	}
	data := append([]byte(nil), payload...)
	select {
	case t.rxCh <- data:
	default:
		glog.V(3).Infof("mqtt: dropped %d bytes from %s", len(data), topic)
	}
}

// Read implements transport.Transport.
func (t *Transport) Read(p []byte) (int, bool) {
	if len(t.pending) == 0 {
		select {
		case t.pending = <-t.rxCh:
		default:
			return 0, false
		}
	}
	n := copy(p, t.pending)
	t.pending = t.pending[n:]
	return n, n > 0
}

// Write implements transport.Transport.
func (t *Transport) Write(p []byte) {
	if len(p) == 0 {
		return
	}
	t.queue.Pub(t.pubTopic, append([]byte(nil), p...))
}

package transport

import (
	"io"
	"sync"

	"github.com/golang/glog"
)

// TxQueueSize is the number of bytes a host port buffers ahead of its writer.
const TxQueueSize = 256

const txChunk = 64

// txQueue hands bytes to a writer goroutine through a bounded queue.
// Write never blocks on the port: bytes which don't fit are refused.
type txQueue struct {
	name  string
	port  io.Writer
	queue chan byte
	done  chan struct{}
	once  sync.Once
}

func newTxQueue(name string, port io.Writer, size int) *txQueue {
	q := &txQueue{
		name:  name,
		port:  port,
		queue: make(chan byte, size),
		done:  make(chan struct{}),
	}
	go q.run()
	return q
}

// Write queues as much of p as fits and returns ErrWouldBlock for the rest.
func (q *txQueue) Write(p []byte) (int, error) {
	select {
	case <-q.done:
		return 0, io.ErrClosedPipe
	default:
	}
	for n, b := range p {
		select {
		case q.queue <- b:
		default:
			return n, ErrWouldBlock
		}
	}
	return len(p), nil
}

// Close stops the writer. A port write in progress is released by
// closing the port.
func (q *txQueue) Close() {
	q.once.Do(func() { close(q.done) })
}

func (q *txQueue) run() {
	buf := make([]byte, 0, txChunk)
	for {
		select {
		case b := <-q.queue:
			buf = append(buf[:0], b)
		case <-q.done:
			return
		}
	fill:
		for len(buf) < cap(buf) {
			select {
			case b := <-q.queue:
				buf = append(buf, b)
			default:
				break fill
			}
		}
		if _, err := q.port.Write(buf); err != nil {
			select {
			case <-q.done:
				return
			default:
			}
			glog.Warningf("%s: write: %v", q.name, err)
		}
	}
}

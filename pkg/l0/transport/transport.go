// Package transport provides the non-blocking byte channels the
// expander talks over.
package transport

import "errors"

// Transport is a non-blocking byte channel to the host.
type Transport interface {
	// Read returns the number of bytes copied into p, or false if
	// nothing is pending. It never blocks.
	Read(p []byte) (int, bool)
	// Write sends p on a best effort basis. Bytes which can't be sent
	// without blocking are dropped.
	Write(p []byte)
}

// ErrWouldBlock is returned by drivers when a write can't make progress.
var ErrWouldBlock = errors.New("would block")

package comm

import (
	"errors"
	"sync/atomic"
)

// AnySource matches messages from every rank in Probe and Recv.
const AnySource = -1

// Sentinel errors for fabric construction and endpoint calls.
var (
	// ErrBadSize indicates a network size smaller than one.
	ErrBadSize = errors.New("comm: network size must be >= 1")
	// ErrRankRange indicates a rank, source, or destination outside [0, size).
	ErrRankRange = errors.New("comm: rank out of range")
	// ErrBadTag indicates a negative message tag.
	ErrBadTag = errors.New("comm: tag must be non-negative")
)

// Options configures a Network.
//   - AsyncDelivery: deliver sends on a dispatcher goroutine instead of
//     inline, so even queuing at the destination lags Isend.
type Options struct {
	AsyncDelivery bool
}

// DefaultOptions returns the deterministic configuration: inline delivery.
func DefaultOptions() Options {
	return Options{AsyncDelivery: false}
}

// Status describes a probed message without consuming it.
type Status struct {
	Source int // sending rank
	Tag    int // message tag
	Count  int // payload length in bytes
}

// Request tracks completion of one asynchronous send. Sends are
// synchronous-mode: a Request is complete only once the destination has
// received (consumed) the message, not when it was queued. Completion is
// permanent.
type Request struct {
	done atomic.Bool
}

// Test reports, without blocking, whether the send has completed.
func (r *Request) Test() bool {
	return r.done.Load()
}

// message is one queued payload inside a mailbox, carrying the Request to
// complete once a receiver consumes it.
type message struct {
	source int
	tag    int
	data   []byte
	req    *Request
}

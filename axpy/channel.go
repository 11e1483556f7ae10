package axpy

import "github.com/katalvlaran/gridax/comm"

// sendChannel is the outbound buffer pool for one message kind bound for one
// peer: parallel slices of payload buffers, send handles, and in-flight
// flags. Slots are created lazily and reused once their prior send completes,
// bounding buffer churn to the number of concurrently in-flight sends.
type sendChannel struct {
	bufs [][]byte
	reqs []*comm.Request
	busy []bool
}

// readyForSend returns the index of a slot free to carry a size-byte message,
// marking it in flight and sizing its buffer. A slot is free when it was
// never sent on or when its completion test now passes; if none qualify a new
// slot is appended.
// Complexity: O(slots).
func (ch *sendChannel) readyForSend(size int) int {
	for i := range ch.busy {
		if ch.busy[i] && ch.reqs[i].Test() {
			ch.busy[i] = false
		}
		if !ch.busy[i] {
			ch.busy[i] = true
			if cap(ch.bufs[i]) >= size {
				ch.bufs[i] = ch.bufs[i][:size]
			} else {
				ch.bufs[i] = make([]byte, size)
			}
			return i
		}
	}
	ch.bufs = append(ch.bufs, make([]byte, size))
	ch.reqs = append(ch.reqs, nil)
	ch.busy = append(ch.busy, true)
	return len(ch.busy) - 1
}

// update refreshes the in-flight flags via non-blocking completion tests.
func (ch *sendChannel) update() {
	for i := range ch.busy {
		if ch.busy[i] && ch.reqs[i].Test() {
			ch.busy[i] = false
		}
	}
}

// idle reports whether no send on this channel is still in flight. Flags must
// be current (see update).
func (ch *sendChannel) idle() bool {
	for _, b := range ch.busy {
		if b {
			return false
		}
	}
	return true
}

// inFlight counts sends still in flight, for diagnostics.
func (ch *sendChannel) inFlight() int {
	n := 0
	for _, b := range ch.busy {
		if b {
			n++
		}
	}
	return n
}

// peerState is the per-peer protocol state of one attachment: the three
// outbound pools plus the End-Of-Message handshake flags.
type peerState struct {
	data    sendChannel
	request sendChannel
	reply   sendChannel

	sentEOM bool
	haveEOM bool
	eomReq  *comm.Request // token send handle; Abort reports it while unconsumed
}

package axpy

import (
	"fmt"

	"github.com/katalvlaran/gridax/comm"
)

// updateSendStatuses refreshes the in-flight flags of every outbound pool via
// non-blocking completion tests.
func (a *Interface) updateSendStatuses() {
	for rank := range a.peers {
		ps := &a.peers[rank]
		ps.data.update()
		ps.request.update()
		ps.reply.update()
	}
}

// handleEOMs advances the termination handshake one step: send an
// End-Of-Message token to each peer toward which nothing is in flight
// anymore, then consume at most one inbound token. A token promises the peer
// no further data, request, or reply traffic for this attachment.
func (a *Interface) handleEOMs() error {
	a.updateSendStatuses()

	for rank := range a.peers {
		ps := &a.peers[rank]
		if ps.sentEOM {
			continue
		}
		if ps.data.idle() && ps.request.idle() && ps.reply.idle() {
			req, err := a.c.Isend(eomToken[:], rank, tagEOM)
			if err != nil {
				return err
			}
			ps.eomReq = req
			ps.sentEOM = true
			if a.verbose {
				a.log.WithField("rank", a.c.Rank()).WithField("peer", rank).
					Debug("axpy: eom sent")
			}
		}
	}

	st, ok := a.c.Probe(comm.AnySource, tagEOM)
	if !ok {
		return nil
	}
	buf, err := a.c.Recv(st.Source, tagEOM)
	if err != nil {
		return err
	}
	if len(buf) != 1 || buf[0] != eomToken[0] {
		return fmt.Errorf("eom token from rank %d: %w", st.Source, ErrMalformed)
	}
	a.peers[st.Source].haveEOM = true
	if a.verbose {
		a.log.WithField("rank", a.c.Rank()).WithField("peer", st.Source).
			Debug("axpy: eom received")
	}
	return nil
}

// finished reports whether the termination predicate holds: an End-Of-Message
// exchanged with every peer in both directions.
func (a *Interface) finished() bool {
	for rank := range a.peers {
		if !a.peers[rank].sentEOM || !a.peers[rank].haveEOM {
			return false
		}
	}
	return true
}

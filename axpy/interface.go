package axpy

import (
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridax/comm"
	"github.com/katalvlaran/gridax/dist"
	"github.com/katalvlaran/gridax/matrix"
)

// Interface is one rank's endpoint of the one-sided update/read protocol.
// It owns the attachment state machine (unattached → attached-for-put or
// attached-for-get → unattached) and all per-peer channel state. An Interface
// is driven by a single goroutine; it is not safe for concurrent use.
type Interface struct {
	c       *comm.Comm
	log     *logrus.Logger
	verbose bool

	attached bool
	mode     Mode
	put      *dist.Matrix // mutable target while attached for puts
	get      *dist.Matrix // read-only source while attached for gets

	peers []peerState
}

// New constructs an Interface over the given endpoint. A nil Options.Log is
// replaced with the default discard logger.
func New(c *comm.Comm, opts Options) *Interface {
	log := opts.Log
	if log == nil {
		log = DefaultOptions().Log
	}
	return &Interface{c: c, log: log, verbose: opts.Verbose}
}

// target returns the currently attached matrix.
func (a *Interface) target() *dist.Matrix {
	if a.mode == LocalToGlobal {
		return a.put
	}
	return a.get
}

// Attach binds the interface to m for the given mode, initializing per-peer
// channel state sized to the grid. The matrix handle must belong to the same
// rank and a grid of the same size as the communicator.
// Usage errors: ErrAlreadyAttached, ErrBadMode, ErrGridMismatch,
// ErrRankMismatch.
// Complexity: O(P).
func (a *Interface) Attach(mode Mode, m *dist.Matrix) error {
	if a.attached {
		return ErrAlreadyAttached
	}
	if mode != LocalToGlobal && mode != GlobalToLocal {
		return ErrBadMode
	}
	if m.Grid().Size() != a.c.Size() {
		return ErrGridMismatch
	}
	if m.Rank() != a.c.Rank() {
		return ErrRankMismatch
	}
	a.attached = true
	a.mode = mode
	if mode == LocalToGlobal {
		a.put = m
	} else {
		a.get = m
	}
	a.peers = make([]peerState, m.Grid().Size())
	if a.verbose {
		a.log.WithFields(logrus.Fields{
			"rank": a.c.Rank(),
			"mode": mode.String(),
		}).Debug("axpy: attached")
	}
	return nil
}

// Axpy is the put: it adds alpha·X into the attached target at offset (i, j),
// fragmenting by grid ownership and firing one non-blocking send per owning
// rank. It returns once all applicable sends have been initiated; no
// acknowledgment is awaited.
// Usage errors: ErrNotAttached, ErrImmutableTarget. Bounds errors:
// ErrNegativeOffset, ErrOutOfBounds, reported before any send.
func (a *Interface) Axpy(alpha float64, x *matrix.Dense, i, j int) error {
	if !a.attached {
		return ErrNotAttached
	}
	if a.mode != LocalToGlobal {
		return ErrImmutableTarget
	}
	return a.axpyLocalToGlobal(alpha, x, i, j)
}

// Read is the get: it accumulates alpha times the attached source's region
// (i, j, y.Rows(), y.Cols()) into y. The call blocks until every rank's reply
// has arrived but keeps servicing other ranks' read requests meanwhile.
// Usage errors: ErrNotAttached, ErrWrongMode. Bounds errors:
// ErrNegativeOffset, ErrOutOfBounds, reported before any send.
func (a *Interface) Read(alpha float64, y *matrix.Dense, i, j int) error {
	if !a.attached {
		return ErrNotAttached
	}
	if a.mode != GlobalToLocal {
		return ErrWrongMode
	}
	return a.axpyGlobalToLocal(alpha, y, i, j)
}

// Detach drains the attachment: it services inbound traffic for the current
// mode and runs the End-Of-Message handshake until every peer has both sent
// and received a token, joins a collective barrier over the grid, and clears
// all attachment state. Returns ErrNotAttached if nothing is attached; an
// inbound-consistency failure aborts the drain and is returned as-is.
func (a *Interface) Detach() error {
	if !a.attached {
		return ErrNotAttached
	}
	for !a.finished() {
		var err error
		if a.mode == LocalToGlobal {
			err = a.handleData()
		} else {
			err = a.handleRequest()
		}
		if err != nil {
			return err
		}
		if err = a.handleEOMs(); err != nil {
			return err
		}
		runtime.Gosched()
	}
	a.c.Barrier()
	a.clear()
	if a.verbose {
		a.log.WithField("rank", a.c.Rank()).Debug("axpy: detached")
	}
	return nil
}

// Abort tears the attachment down without draining. It exists for unwind
// paths where the owning computation has already failed: running the drain
// protocol there could fail again or hang the whole grid, so Abort only
// reports what was pending and drops the state. Safe to call when unattached.
func (a *Interface) Abort() {
	if !a.attached {
		return
	}
	pendingData, pendingReq, pendingRep, pendingEOM, missingEOM := 0, 0, 0, 0, 0
	for rank := range a.peers {
		ps := &a.peers[rank]
		pendingData += ps.data.inFlight()
		pendingReq += ps.request.inFlight()
		pendingRep += ps.reply.inFlight()
		if ps.sentEOM && ps.eomReq != nil && !ps.eomReq.Test() {
			pendingEOM++
		}
		if !ps.sentEOM || !ps.haveEOM {
			missingEOM++
		}
	}
	a.log.WithFields(logrus.Fields{
		"rank":              a.c.Rank(),
		"mode":              a.mode.String(),
		"inflight_data":     pendingData,
		"inflight_requests": pendingReq,
		"inflight_replies":  pendingRep,
		"inflight_eoms":     pendingEOM,
		"peers_unfinished":  missingEOM,
	}).Warn("axpy: aborting attachment without draining; the termination protocol cannot safely be completed and peers may hang")
	a.clear()
}

// clear resets the attachment state machine to unattached.
func (a *Interface) clear() {
	a.attached = false
	a.put = nil
	a.get = nil
	a.peers = nil
}

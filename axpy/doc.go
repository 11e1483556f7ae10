// Package axpy implements a one-sided update/read interface for cyclically
// distributed matrices on top of two-sided, non-blocking message passing.
//
// What:
//
//   - An Interface attaches to a dist.Matrix either for updates
//     (LocalToGlobal: any rank may add alpha·X into any global submatrix) or
//     for reads (GlobalToLocal: any rank may pull a global submatrix into a
//     local buffer). Exactly one attachment per Interface at a time.
//   - Axpy is the put: it fragments the local contribution by grid ownership
//     and fires one non-blocking send per owning rank, never blocking.
//   - Read is the get: it broadcasts a request to every rank, then services
//     other ranks' requests while collecting the replies, so the whole grid
//     keeps making progress.
//   - Detach drains remaining traffic via a decentralized End-Of-Message
//     handshake: a rank tokens a peer only once nothing further is in flight
//     toward it, and finishes only when tokens have been exchanged with every
//     peer. It then joins a collective barrier before tearing state down.
//
// Why:
//
//   - Put/get semantics let a rank inject or fetch submatrix data without the
//     owner issuing a matching receive at a coordinated point in its control
//     flow; everything above plain send/receive/probe is emulated here.
//
// Wire format (little-endian, payload immediately after the header):
//
//   - update:  i,j,height,width int32, alpha float64, then height·width
//     locally-owned entries column-major (tag 1)
//   - eom:     one sentinel byte (tag 2)
//   - request: i,j,height,width int32 (tag 3)
//   - reply:   replyRow,replyCol int32, then the owned entries column-major
//     (tag 4)
//
// Errors:
//
//   - Usage: ErrAlreadyAttached, ErrNotAttached, ErrBadMode, ErrWrongMode,
//     ErrImmutableTarget, ErrGridMismatch, ErrRankMismatch. Reported before
//     any communication is issued.
//   - Bounds: ErrNegativeOffset, ErrOutOfBounds; on the unpack side a bounds
//     violation or short payload is an internal-consistency failure
//     (ErrMalformed or wrapped ErrOutOfBounds).
//
// Liveness precondition: every rank of the grid must participate
// symmetrically: service traffic and eventually Detach. There is no timeout;
// a peer that never answers leaves Read or Detach polling forever. Abort
// exists for teardown during failure unwind, where running the drain protocol
// could itself hang the grid.
package axpy

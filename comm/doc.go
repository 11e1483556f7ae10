// Package comm provides an in-process, MPI-flavored point-to-point messaging
// fabric: asynchronous sends, blocking receives, non-blocking probes, and a
// reusable collective barrier, with one endpoint per rank.
//
// What:
//
//   - Network is the shared fabric for a fixed number of ranks; Comm is one
//     rank's endpoint onto it.
//   - Isend does not wait for the receiver: the payload is copied and
//     queued for the destination, and a Request handle reports completion
//     via Test. Sends
//     are synchronous-mode (MPI Issend-like): a Request completes only once
//     the destination has consumed the message via Recv, so a completed send
//     proves the peer has taken the data, not merely that it was queued.
//   - Probe inspects the caller's inbox for a pending message by (source,
//     tag) without receiving it and without allocating on the miss path.
//   - Recv blocks until a matching message arrives; messages between one
//     (source, destination, tag) triple are delivered FIFO.
//   - Barrier is collective over all ranks and reusable (cyclic).
//
// Why:
//
//   - One-sided update/read protocols are layered on exactly these
//     primitives: fire-and-forget sends with completion testing, plus
//     probe-then-receive polling loops.
//   - An in-process fabric lets a whole process grid run as goroutines in a
//     single test binary, deterministically by default.
//
// Delivery modes:
//
//   - By default a send is queued at the destination before Isend returns.
//   - AsyncDelivery routes sends through a dispatcher goroutine, so even
//     queuing lags the call; the handoff may briefly block the sender while
//     the dispatcher's queue is full. Per-triple FIFO order is preserved.
//     Call Network.Close to stop the dispatcher; no Isend may follow Close.
//
// Errors:
//
//   - ErrBadSize: network size < 1.
//   - ErrRankRange: rank, source, or destination outside [0, size).
//   - ErrBadTag: negative message tag.
package comm

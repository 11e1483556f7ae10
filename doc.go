// Package gridax layers one-sided distributed-matrix updates and reads on
// top of plain two-sided non-blocking messaging.
//
// 🚀 What is gridax?
//
//	A library for process grids that lets any rank deposit additive updates
//	into, or pull submatrices out of, a matrix distributed over the grid —
//	without the owners ever posting a matching call. It brings together:
//		• grid/   — r×c process-grid geometry and cyclic-distribution math
//		• comm/   — an in-process MPI-flavored fabric: Isend, Recv, Probe, Barrier
//		• matrix/ — column-major dense storage with gonum interop
//		• dist/   — the per-rank handle to a cyclically distributed matrix
//		• axpy/   — the protocol itself: Attach, Axpy, Read, Detach
//
// ✨ Why choose gridax?
//
//   - One-sided semantics on two-sided primitives – no shared memory, no
//     progress threads, just probe-and-serve polling
//   - Deterministic testing – an entire grid runs as goroutines in one binary
//   - Clear failure taxonomy – usage, bounds, and consistency errors are
//     distinct sentinels matched with errors.Is
//
// Quick sketch of a put:
//
//	ifc := axpy.New(c, axpy.DefaultOptions())
//	ifc.Attach(axpy.LocalToGlobal, Y)
//	ifc.Axpy(2.0, X, i, j) // Y[i:i+h, j:j+w] += 2·X, wherever it lives
//	ifc.Detach()           // drain, handshake, barrier
//
// Dive into the per-package docs for the wire format, the termination
// handshake, and the liveness preconditions.
//
//	go get github.com/katalvlaran/gridax
package gridax

package axpy

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// Mode selects the direction of an attachment.
type Mode int

const (
	// LocalToGlobal attaches for puts: ranks add local contributions into the
	// distributed target.
	LocalToGlobal Mode = iota
	// GlobalToLocal attaches for gets: ranks pull global submatrices out of
	// the distributed source, which is treated as read-only.
	GlobalToLocal
)

// String returns the mode name for diagnostics.
func (m Mode) String() string {
	switch m {
	case LocalToGlobal:
		return "LocalToGlobal"
	case GlobalToLocal:
		return "GlobalToLocal"
	default:
		return "Unknown"
	}
}

// Stable message tags; probing targets one kind without ambiguity.
const (
	tagData    = 1
	tagEOM     = 2
	tagRequest = 3
	tagReply   = 4
)

// Usage errors: reported synchronously, before any communication is issued.
var (
	// ErrAlreadyAttached indicates Attach on an interface that is attached.
	ErrAlreadyAttached = errors.New("axpy: must detach before attaching")
	// ErrNotAttached indicates an operation on an unattached interface.
	ErrNotAttached = errors.New("axpy: not attached")
	// ErrBadMode indicates an unknown attachment mode.
	ErrBadMode = errors.New("axpy: unknown attachment mode")
	// ErrWrongMode indicates Read on an interface attached for puts.
	ErrWrongMode = errors.New("axpy: operation does not match attachment mode")
	// ErrImmutableTarget indicates a put against a read-only (get) attachment.
	ErrImmutableTarget = errors.New("axpy: cannot update an immutable target")
	// ErrGridMismatch indicates a matrix grid sized unlike the communicator.
	ErrGridMismatch = errors.New("axpy: matrix grid size does not match communicator size")
	// ErrRankMismatch indicates a matrix handle built for a different rank.
	ErrRankMismatch = errors.New("axpy: matrix rank does not match communicator rank")
)

// Bounds and consistency errors.
var (
	// ErrNegativeOffset indicates a negative submatrix offset.
	ErrNegativeOffset = errors.New("axpy: submatrix offsets must be non-negative")
	// ErrOutOfBounds indicates a region exceeding the global matrix shape.
	ErrOutOfBounds = errors.New("axpy: submatrix out of bounds of global matrix")
	// ErrMalformed indicates an inbound message whose framing or payload
	// length disagrees with its header; an internal-consistency failure.
	ErrMalformed = errors.New("axpy: malformed message")
)

// Options configures an Interface.
//   - Log: destination for diagnostics; Abort always writes here.
//   - Verbose: additionally trace every protocol step at debug level.
type Options struct {
	Log     *logrus.Logger
	Verbose bool
}

// DefaultOptions returns the quiet configuration: a discard logger, no
// tracing.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Options{Log: l}
}

package axpy_test

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridax/axpy"
	"github.com/katalvlaran/gridax/comm"
	"github.com/katalvlaran/gridax/dist"
	"github.com/katalvlaran/gridax/grid"
)

// Wire tag values as fixed by the protocol (see the package doc).
const (
	wireTagData    = 1
	wireTagEOM     = 2
	wireTagRequest = 3
)

// updateFrame hand-builds an update message: the little-endian header plus
// room for the given number of payload entries.
func updateFrame(i, j, height, width int32, alpha float64, entries int) []byte {
	b := make([]byte, 24+8*entries)
	binary.LittleEndian.PutUint32(b[0:], uint32(i))
	binary.LittleEndian.PutUint32(b[4:], uint32(j))
	binary.LittleEndian.PutUint32(b[8:], uint32(height))
	binary.LittleEndian.PutUint32(b[12:], uint32(width))
	binary.LittleEndian.PutUint64(b[16:], math.Float64bits(alpha))
	return b
}

// requestFrame hand-builds a read-request message.
func requestFrame(i, j, height, width int32) []byte {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint32(b[0:], uint32(i))
	binary.LittleEndian.PutUint32(b[4:], uint32(j))
	binary.LittleEndian.PutUint32(b[8:], uint32(height))
	binary.LittleEndian.PutUint32(b[12:], uint32(width))
	return b
}

// twoRankWorld builds a 2×1 grid where rank 0 holds an attached interface
// over a 4×4 matrix and rank 1 is a raw endpoint used to inject frames.
func twoRankWorld(t *testing.T, mode axpy.Mode, opts axpy.Options) (*axpy.Interface, *dist.Matrix, *comm.Comm) {
	t.Helper()
	g, err := grid.New(2, 1)
	require.NoError(t, err)
	n, err := comm.NewNetwork(2, comm.DefaultOptions())
	require.NoError(t, err)
	c0, err := n.Comm(0)
	require.NoError(t, err)
	c1, err := n.Comm(1)
	require.NoError(t, err)
	m, err := dist.NewMatrix(g, 0, 0, 4, 4, 0, 0)
	require.NoError(t, err)
	ifc := axpy.New(c0, opts)
	require.NoError(t, ifc.Attach(mode, m))
	return ifc, m, c1
}

// TestInboundUpdate_OutOfBounds delivers an update whose region exceeds the
// target; the drain must surface it as an internal-consistency failure and
// the target must stay untouched.
func TestInboundUpdate_OutOfBounds(t *testing.T) {
	ifc, m, raw := twoRankWorld(t, axpy.LocalToGlobal, axpy.DefaultOptions())
	_, err := raw.Isend(updateFrame(2, 2, 4, 4, 1, 0), 0, wireTagData)
	require.NoError(t, err)

	if err = ifc.Detach(); !errors.Is(err, axpy.ErrOutOfBounds) {
		t.Errorf("Detach error = %v; want ErrOutOfBounds", err)
	}
	for _, v := range m.LocalBuffer() {
		if v != 0 {
			t.Fatalf("out-of-bounds update mutated the target: %v", m.LocalBuffer())
		}
	}
}

// TestInboundUpdate_TruncatedPayload delivers an update whose payload is
// shorter than its header promises for this receiver's owned slice.
func TestInboundUpdate_TruncatedPayload(t *testing.T) {
	ifc, m, raw := twoRankWorld(t, axpy.LocalToGlobal, axpy.DefaultOptions())
	// Rank 0 owns one row of a 2x2 region at (0,0), so two entries are due;
	// ship only one.
	_, err := raw.Isend(updateFrame(0, 0, 2, 2, 1, 1), 0, wireTagData)
	require.NoError(t, err)

	if err = ifc.Detach(); !errors.Is(err, axpy.ErrMalformed) {
		t.Errorf("Detach error = %v; want ErrMalformed", err)
	}
	for _, v := range m.LocalBuffer() {
		if v != 0 {
			t.Fatalf("truncated update mutated the target: %v", m.LocalBuffer())
		}
	}
}

// TestInboundRequest_OutOfBounds delivers a read request for a region the
// attached source cannot hold.
func TestInboundRequest_OutOfBounds(t *testing.T) {
	ifc, _, raw := twoRankWorld(t, axpy.GlobalToLocal, axpy.DefaultOptions())
	_, err := raw.Isend(requestFrame(1, 1, 4, 4), 0, wireTagRequest)
	require.NoError(t, err)

	if err = ifc.Detach(); !errors.Is(err, axpy.ErrOutOfBounds) {
		t.Errorf("Detach error = %v; want ErrOutOfBounds", err)
	}
}

// TestInboundRequest_ShortHeader delivers a request frame shorter than the
// fixed header length.
func TestInboundRequest_ShortHeader(t *testing.T) {
	ifc, _, raw := twoRankWorld(t, axpy.GlobalToLocal, axpy.DefaultOptions())
	_, err := raw.Isend(make([]byte, 8), 0, wireTagRequest)
	require.NoError(t, err)

	if err = ifc.Detach(); !errors.Is(err, axpy.ErrMalformed) {
		t.Errorf("Detach error = %v; want ErrMalformed", err)
	}
}

// TestInboundEOM_BadToken delivers a corrupt End-Of-Message token, then
// checks the Abort diagnostics: by the time the drain fails, rank 0 has
// tokened both peers and neither token was consumed.
func TestInboundEOM_BadToken(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	ifc, _, raw := twoRankWorld(t, axpy.LocalToGlobal, axpy.Options{Log: logger})
	_, err := raw.Isend([]byte{0x00}, 0, wireTagEOM)
	require.NoError(t, err)

	if err = ifc.Detach(); !errors.Is(err, axpy.ErrMalformed) {
		t.Errorf("Detach error = %v; want ErrMalformed", err)
	}

	ifc.Abort()
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.WarnLevel, entry.Level)
	require.Equal(t, 0, entry.Data["rank"])
	require.Equal(t, 0, entry.Data["inflight_data"])
	require.Equal(t, 2, entry.Data["inflight_eoms"])
	require.Equal(t, 2, entry.Data["peers_unfinished"])
}

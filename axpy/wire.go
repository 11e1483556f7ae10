package axpy

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Header lengths in bytes. Payload entries are float64 and follow the header
// with no padding, column-major relative to the packed region.
const (
	updateHeaderLen  = 24 // i, j, height, width int32; alpha float64
	requestHeaderLen = 16 // i, j, height, width int32
	replyHeaderLen   = 8  // replyRow, replyCol int32
	entryLen         = 8  // one float64
)

// eomToken is the single-byte End-Of-Message sentinel.
var eomToken = [1]byte{0x45}

// updateHeader describes an inbound or outbound additive update.
type updateHeader struct {
	i, j          int32
	height, width int32
	alpha         float64
}

func putUpdateHeader(b []byte, h updateHeader) {
	binary.LittleEndian.PutUint32(b[0:], uint32(h.i))
	binary.LittleEndian.PutUint32(b[4:], uint32(h.j))
	binary.LittleEndian.PutUint32(b[8:], uint32(h.height))
	binary.LittleEndian.PutUint32(b[12:], uint32(h.width))
	binary.LittleEndian.PutUint64(b[16:], math.Float64bits(h.alpha))
}

func parseUpdateHeader(b []byte) (updateHeader, error) {
	if len(b) < updateHeaderLen {
		return updateHeader{}, fmt.Errorf("update header %d bytes: %w", len(b), ErrMalformed)
	}
	return updateHeader{
		i:      int32(binary.LittleEndian.Uint32(b[0:])),
		j:      int32(binary.LittleEndian.Uint32(b[4:])),
		height: int32(binary.LittleEndian.Uint32(b[8:])),
		width:  int32(binary.LittleEndian.Uint32(b[12:])),
		alpha:  math.Float64frombits(binary.LittleEndian.Uint64(b[16:])),
	}, nil
}

// requestHeader describes a read request's target region.
type requestHeader struct {
	i, j          int32
	height, width int32
}

func putRequestHeader(b []byte, h requestHeader) {
	binary.LittleEndian.PutUint32(b[0:], uint32(h.i))
	binary.LittleEndian.PutUint32(b[4:], uint32(h.j))
	binary.LittleEndian.PutUint32(b[8:], uint32(h.height))
	binary.LittleEndian.PutUint32(b[12:], uint32(h.width))
}

func parseRequestHeader(b []byte) (requestHeader, error) {
	if len(b) != requestHeaderLen {
		return requestHeader{}, fmt.Errorf("request header %d bytes: %w", len(b), ErrMalformed)
	}
	return requestHeader{
		i:      int32(binary.LittleEndian.Uint32(b[0:])),
		j:      int32(binary.LittleEndian.Uint32(b[4:])),
		height: int32(binary.LittleEndian.Uint32(b[8:])),
		width:  int32(binary.LittleEndian.Uint32(b[12:])),
	}, nil
}

// replyHeader identifies the grid coordinate a read reply came from.
type replyHeader struct {
	row, col int32
}

func putReplyHeader(b []byte, h replyHeader) {
	binary.LittleEndian.PutUint32(b[0:], uint32(h.row))
	binary.LittleEndian.PutUint32(b[4:], uint32(h.col))
}

func parseReplyHeader(b []byte) (replyHeader, error) {
	if len(b) < replyHeaderLen {
		return replyHeader{}, fmt.Errorf("reply header %d bytes: %w", len(b), ErrMalformed)
	}
	return replyHeader{
		row: int32(binary.LittleEndian.Uint32(b[0:])),
		col: int32(binary.LittleEndian.Uint32(b[4:])),
	}, nil
}

// putEntry writes one payload entry at byte offset off and returns the next
// offset.
func putEntry(b []byte, off int, v float64) int {
	binary.LittleEndian.PutUint64(b[off:], math.Float64bits(v))
	return off + entryLen
}

// getEntry reads one payload entry at byte offset off.
func getEntry(b []byte, off int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b[off:]))
}

package axpy

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridax/comm"
	"github.com/katalvlaran/gridax/grid"
	"github.com/katalvlaran/gridax/matrix"
)

// axpyLocalToGlobal fragments x by grid ownership: for each rank owning part
// of the target region it packs an update header plus that rank's entries,
// selected by striding through x under the cyclic distribution offsets, and
// fires a non-blocking send. Walks the ranks starting from this process so no
// single destination is hammered first by every sender.
func (a *Interface) axpyLocalToGlobal(alpha float64, x *matrix.Dense, i, j int) error {
	y := a.put
	if i < 0 || j < 0 {
		return fmt.Errorf("axpy at (%d,%d): %w", i, j, ErrNegativeOffset)
	}
	height, width := x.Rows(), x.Cols()
	if i+height > y.Height() || j+width > y.Width() {
		return fmt.Errorf("axpy %dx%d at (%d,%d) into %dx%d: %w",
			height, width, i, j, y.Height(), y.Width(), ErrOutOfBounds)
	}

	g := y.Grid()
	r, c, p := g.Height(), g.Width(), g.Size()
	colAlign := (y.ColAlign() + i) % r
	rowAlign := (y.RowAlign() + j) % c

	hdr := updateHeader{
		i: int32(i), j: int32(j),
		height: int32(height), width: int32(width),
		alpha: alpha,
	}

	xdata := x.Data()
	xld := x.LDim()

	receivingRow := y.Row()
	receivingCol := y.Col()
	for step := 0; step < p; step++ {
		colShift := grid.Shift(receivingRow, colAlign, r)
		rowShift := grid.Shift(receivingCol, rowAlign, c)
		localHeight := grid.LocalLength(height, colShift, r)
		localWidth := grid.LocalLength(width, rowShift, c)

		if localHeight*localWidth != 0 {
			dest := receivingRow + r*receivingCol
			ch := &a.peers[dest].data
			idx := ch.readyForSend(updateHeaderLen + localHeight*localWidth*entryLen)
			buf := ch.bufs[idx]
			putUpdateHeader(buf, hdr)
			off := updateHeaderLen
			for t := 0; t < localWidth; t++ {
				xcol := xdata[(rowShift+t*c)*xld:]
				for s := 0; s < localHeight; s++ {
					off = putEntry(buf, off, xcol[colShift+s*r])
				}
			}
			req, err := a.c.Isend(buf, dest, tagData)
			if err != nil {
				return err
			}
			ch.reqs[idx] = req
			if a.verbose {
				a.log.WithFields(logrus.Fields{
					"rank":    a.c.Rank(),
					"dest":    dest,
					"entries": localHeight * localWidth,
				}).Debug("axpy: update sent")
			}
		}

		receivingRow = (receivingRow + 1) % r
		if receivingRow == 0 {
			receivingCol = (receivingCol + 1) % c
		}
	}
	return nil
}

// handleData services at most one pending inbound update: probe, receive,
// validate, then accumulate alpha·entry into the locally-owned slice of the
// target region. This is the only mutation path of the target while attached
// for puts. A bounds violation here means a peer shipped a region this target
// cannot hold; it is reported as an internal-consistency failure.
func (a *Interface) handleData() error {
	st, ok := a.c.Probe(comm.AnySource, tagData)
	if !ok {
		return nil
	}
	buf, err := a.c.Recv(st.Source, tagData)
	if err != nil {
		return err
	}
	hdr, err := parseUpdateHeader(buf)
	if err != nil {
		return err
	}
	y := a.put
	i, j := int(hdr.i), int(hdr.j)
	height, width := int(hdr.height), int(hdr.width)
	if height < 0 || width < 0 || i < 0 || j < 0 ||
		i+height > y.Height() || j+width > y.Width() {
		return fmt.Errorf("remote update %dx%d at (%d,%d) from rank %d: %w",
			height, width, i, j, st.Source, ErrOutOfBounds)
	}

	g := y.Grid()
	r, c := g.Height(), g.Width()
	colAlign := (y.ColAlign() + i) % r
	rowAlign := (y.RowAlign() + j) % c
	colShift := grid.Shift(y.Row(), colAlign, r)
	rowShift := grid.Shift(y.Col(), rowAlign, c)
	localHeight := grid.LocalLength(height, colShift, r)
	localWidth := grid.LocalLength(width, rowShift, c)
	if len(buf) != updateHeaderLen+localHeight*localWidth*entryLen {
		return fmt.Errorf("remote update payload %d bytes, want %d entries from rank %d: %w",
			len(buf)-updateHeaderLen, localHeight*localWidth, st.Source, ErrMalformed)
	}

	iLocal := grid.LocalLength(i, y.ColShift(), r)
	jLocal := grid.LocalLength(j, y.RowShift(), c)
	ydata := y.LocalBuffer()
	yld := y.LocalHeight()

	off := updateHeaderLen
	for t := 0; t < localWidth; t++ {
		ycol := ydata[(jLocal+t)*yld+iLocal:]
		for s := 0; s < localHeight; s++ {
			ycol[s] += hdr.alpha * getEntry(buf, off)
			off += entryLen
		}
	}
	if a.verbose {
		a.log.WithFields(logrus.Fields{
			"rank":    a.c.Rank(),
			"source":  st.Source,
			"entries": localHeight * localWidth,
		}).Debug("axpy: update applied")
	}
	return nil
}

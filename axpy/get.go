package axpy

import (
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridax/comm"
	"github.com/katalvlaran/gridax/grid"
	"github.com/katalvlaran/gridax/matrix"
)

// axpyGlobalToLocal broadcasts a read request for the region
// (i, j, y.Rows(), y.Cols()) to every rank, itself included, so its own
// request is serviced in the same loop as everyone else's. It then polls
// until all P replies have been accumulated into
// y, servicing other ranks' requests between probes so the grid keeps making
// progress.
func (a *Interface) axpyGlobalToLocal(alpha float64, y *matrix.Dense, i, j int) error {
	x := a.get
	if i < 0 || j < 0 {
		return fmt.Errorf("read at (%d,%d): %w", i, j, ErrNegativeOffset)
	}
	height, width := y.Rows(), y.Cols()
	if i+height > x.Height() || j+width > x.Width() {
		return fmt.Errorf("read %dx%d at (%d,%d) from %dx%d: %w",
			height, width, i, j, x.Height(), x.Width(), ErrOutOfBounds)
	}

	g := x.Grid()
	r, c, p := g.Height(), g.Width(), g.Size()

	hdr := requestHeader{
		i: int32(i), j: int32(j),
		height: int32(height), width: int32(width),
	}
	for rank := 0; rank < p; rank++ {
		ch := &a.peers[rank].request
		idx := ch.readyForSend(requestHeaderLen)
		putRequestHeader(ch.bufs[idx], hdr)
		req, err := a.c.Isend(ch.bufs[idx], rank, tagRequest)
		if err != nil {
			return err
		}
		ch.reqs[idx] = req
	}
	if a.verbose {
		a.log.WithFields(logrus.Fields{
			"rank": a.c.Rank(), "i": i, "j": j,
			"height": height, "width": width,
		}).Debug("axpy: read requests broadcast")
	}

	colAlign := (x.ColAlign() + i) % r
	rowAlign := (x.RowAlign() + j) % c
	ydata := y.Data()
	yld := y.LDim()

	numReplies := 0
	for numReplies < p {
		if err := a.handleRequest(); err != nil {
			return err
		}
		st, ok := a.c.Probe(comm.AnySource, tagReply)
		if !ok {
			runtime.Gosched()
			continue
		}
		buf, err := a.c.Recv(st.Source, tagReply)
		if err != nil {
			return err
		}
		rep, err := parseReplyHeader(buf)
		if err != nil {
			return err
		}
		row, col := int(rep.row), int(rep.col)
		if row < 0 || row >= r || col < 0 || col >= c {
			return fmt.Errorf("reply coordinate (%d,%d) from rank %d: %w",
				row, col, st.Source, ErrMalformed)
		}

		colShift := grid.Shift(row, colAlign, r)
		rowShift := grid.Shift(col, rowAlign, c)
		localHeight := grid.LocalLength(height, colShift, r)
		localWidth := grid.LocalLength(width, rowShift, c)
		if len(buf) != replyHeaderLen+localHeight*localWidth*entryLen {
			return fmt.Errorf("reply payload %d bytes, want %d entries from rank %d: %w",
				len(buf)-replyHeaderLen, localHeight*localWidth, st.Source, ErrMalformed)
		}

		off := replyHeaderLen
		for t := 0; t < localWidth; t++ {
			ycol := ydata[(rowShift+t*c)*yld:]
			for s := 0; s < localHeight; s++ {
				ycol[colShift+s*r] += alpha * getEntry(buf, off)
				off += entryLen
			}
		}
		numReplies++
	}
	return nil
}

// handleRequest services at most one pending inbound read request: probe,
// receive, compute which locally-owned entries fall inside the requested
// rectangle, pack them behind a reply header carrying this rank's grid
// coordinate, and fire a non-blocking reply. An empty intersection still
// produces a (header-only) reply, since the requester counts replies from
// every rank. A request this source cannot service is an
// internal-consistency failure.
func (a *Interface) handleRequest() error {
	st, ok := a.c.Probe(comm.AnySource, tagRequest)
	if !ok {
		return nil
	}
	buf, err := a.c.Recv(st.Source, tagRequest)
	if err != nil {
		return err
	}
	hdr, err := parseRequestHeader(buf)
	if err != nil {
		return err
	}
	x := a.get
	i, j := int(hdr.i), int(hdr.j)
	height, width := int(hdr.height), int(hdr.width)
	if height < 0 || width < 0 || i < 0 || j < 0 ||
		i+height > x.Height() || j+width > x.Width() {
		return fmt.Errorf("remote request %dx%d at (%d,%d) from rank %d: %w",
			height, width, i, j, st.Source, ErrOutOfBounds)
	}

	g := x.Grid()
	r, c := g.Height(), g.Width()
	colAlign := (x.ColAlign() + i) % r
	rowAlign := (x.RowAlign() + j) % c
	colShift := grid.Shift(x.Row(), colAlign, r)
	rowShift := grid.Shift(x.Col(), rowAlign, c)
	iLocal := grid.LocalLength(i, x.ColShift(), r)
	jLocal := grid.LocalLength(j, x.RowShift(), c)
	localHeight := grid.LocalLength(height, colShift, r)
	localWidth := grid.LocalLength(width, rowShift, c)

	ch := &a.peers[st.Source].reply
	idx := ch.readyForSend(replyHeaderLen + localHeight*localWidth*entryLen)
	sbuf := ch.bufs[idx]
	putReplyHeader(sbuf, replyHeader{row: int32(x.Row()), col: int32(x.Col())})

	xdata := x.LocalBuffer()
	xld := x.LocalHeight()
	off := replyHeaderLen
	for t := 0; t < localWidth; t++ {
		xcol := xdata[(jLocal+t)*xld+iLocal:]
		for s := 0; s < localHeight; s++ {
			off = putEntry(sbuf, off, xcol[s])
		}
	}

	req, err := a.c.Isend(sbuf, st.Source, tagReply)
	if err != nil {
		return err
	}
	ch.reqs[idx] = req
	if a.verbose {
		a.log.WithFields(logrus.Fields{
			"rank":    a.c.Rank(),
			"source":  st.Source,
			"entries": localHeight * localWidth,
		}).Debug("axpy: request serviced")
	}
	return nil
}

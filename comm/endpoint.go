package comm

// Comm is one rank's endpoint onto a Network. Endpoints are cheap handles and
// safe for use by the goroutine driving that rank; a single endpoint must not
// be shared between goroutines.
type Comm struct {
	net  *Network
	rank int
}

// Rank returns the endpoint's rank on the fabric.
func (c *Comm) Rank() int { return c.rank }

// Size returns the number of ranks on the fabric.
func (c *Comm) Size() int { return c.net.size }

// Isend queues data for delivery to dest under tag without waiting for the
// receiver. Inline delivery returns as soon as the message is queued; under
// AsyncDelivery the handoff to the dispatcher may briefly block while its
// queue is full.
// The payload is copied before return, so the caller may reuse data. Sends
// are synchronous-mode: the returned Request completes only once a receiver
// has consumed the message via Recv, which is what lets callers infer "peer
// has taken everything I sent" from completion alone.
// Returns ErrRankRange for an invalid dest, ErrBadTag for a negative tag.
// Complexity: O(len(data)) for the copy.
func (c *Comm) Isend(data []byte, dest, tag int) (*Request, error) {
	if dest < 0 || dest >= c.net.size {
		return nil, ErrRankRange
	}
	if tag < 0 {
		return nil, ErrBadTag
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	req := &Request{}
	m := message{source: c.rank, tag: tag, data: buf, req: req}
	if c.net.dispatch != nil {
		c.net.dispatch <- delivery{dest: dest, msg: m}
		return req, nil
	}
	c.net.boxes[dest].push(m)
	return req, nil
}

// Probe reports whether a message matching (source, tag) is pending in the
// caller's inbox, without consuming it. source may be AnySource. The miss
// path performs no allocation.
// Complexity: O(queue length).
func (c *Comm) Probe(source, tag int) (Status, bool) {
	mb := c.net.boxes[c.rank]
	mb.mu.Lock()
	defer mb.mu.Unlock()
	i := mb.match(source, tag)
	if i < 0 {
		return Status{}, false
	}
	m := &mb.queue[i]
	return Status{Source: m.source, Tag: m.tag, Count: len(m.data)}, true
}

// Recv blocks until a message matching (source, tag) is available, removes it
// from the inbox, and returns its payload. source may be AnySource. Messages
// from one source under one tag are returned in the order they were sent.
// Returns ErrRankRange for an invalid source, ErrBadTag for a negative tag.
func (c *Comm) Recv(source, tag int) ([]byte, error) {
	if source != AnySource && (source < 0 || source >= c.net.size) {
		return nil, ErrRankRange
	}
	if tag < 0 {
		return nil, ErrBadTag
	}
	mb := c.net.boxes[c.rank]
	mb.mu.Lock()
	defer mb.mu.Unlock()
	for {
		if i := mb.match(source, tag); i >= 0 {
			return mb.take(i).data, nil
		}
		mb.cond.Wait()
	}
}

// Barrier blocks until every rank on the fabric has entered it. The barrier
// is cyclic: it may be reused for any number of rounds.
func (c *Comm) Barrier() {
	c.net.bar.await()
}

package comm

import "sync"

// mailbox is one rank's inbox: an unbounded FIFO of queued messages guarded
// by a mutex, with a condition variable for blocked receivers.
type mailbox struct {
	mu    sync.Mutex
	cond  *sync.Cond
	queue []message
}

func newMailbox() *mailbox {
	mb := &mailbox{}
	mb.cond = sync.NewCond(&mb.mu)
	return mb
}

// push appends a message and wakes any blocked receiver.
func (mb *mailbox) push(m message) {
	mb.mu.Lock()
	mb.queue = append(mb.queue, m)
	mb.cond.Broadcast()
	mb.mu.Unlock()
}

// match returns the index of the first queued message matching (source, tag),
// or -1. Caller holds mb.mu.
func (mb *mailbox) match(source, tag int) int {
	for i := range mb.queue {
		if mb.queue[i].tag != tag {
			continue
		}
		if source == AnySource || mb.queue[i].source == source {
			return i
		}
	}
	return -1
}

// take removes and returns the message at index i, preserving FIFO order of
// the remainder and completing the sender's Request. Caller holds mb.mu.
func (mb *mailbox) take(i int) message {
	m := mb.queue[i]
	copy(mb.queue[i:], mb.queue[i+1:])
	mb.queue[len(mb.queue)-1] = message{}
	mb.queue = mb.queue[:len(mb.queue)-1]
	m.req.done.Store(true)
	return m
}

// delivery is one send awaiting dispatch to a destination inbox.
type delivery struct {
	dest int
	msg  message
}

// barrier is a reusable (cyclic) rendezvous over size participants.
type barrier struct {
	mu    sync.Mutex
	cond  *sync.Cond
	size  int
	count int
	gen   int
}

func newBarrier(size int) *barrier {
	b := &barrier{size: size}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// await blocks until size participants have arrived in the current
// generation, then releases all of them and resets for reuse.
func (b *barrier) await() {
	b.mu.Lock()
	defer b.mu.Unlock()
	gen := b.gen
	b.count++
	if b.count == b.size {
		b.count = 0
		b.gen++
		b.cond.Broadcast()
		return
	}
	for gen == b.gen {
		b.cond.Wait()
	}
}

// Network is the shared fabric for a fixed set of ranks. All endpoints must
// come from the same Network; a Network must outlive every send issued on it.
type Network struct {
	size     int
	boxes    []*mailbox
	bar      *barrier
	dispatch chan delivery // nil unless AsyncDelivery
	closed   chan struct{}
}

// NewNetwork constructs a fabric for size ranks.
// Returns ErrBadSize if size < 1.
// Complexity: O(size) setup.
func NewNetwork(size int, opts Options) (*Network, error) {
	if size < 1 {
		return nil, ErrBadSize
	}
	n := &Network{size: size, bar: newBarrier(size)}
	n.boxes = make([]*mailbox, size)
	for i := range n.boxes {
		n.boxes[i] = newMailbox()
	}
	if opts.AsyncDelivery {
		n.dispatch = make(chan delivery, size*4)
		n.closed = make(chan struct{})
		go n.run()
	}
	return n, nil
}

// run drains the dispatch queue, delivering each payload to its destination's
// inbox. A single dispatcher preserves per-(source,dest,tag) FIFO order.
func (n *Network) run() {
	for d := range n.dispatch {
		n.boxes[d.dest].push(d.msg)
	}
	close(n.closed)
}

// Close stops the dispatcher goroutine of an async-delivery Network and waits
// for queued sends to drain. Close is a no-op on inline-delivery networks.
// No Isend may be issued after Close.
func (n *Network) Close() {
	if n.dispatch == nil {
		return
	}
	close(n.dispatch)
	<-n.closed
}

// Size returns the number of ranks on the fabric.
func (n *Network) Size() int { return n.size }

// Comm returns rank's endpoint onto the fabric.
// Returns ErrRankRange if rank is outside [0, Size).
func (n *Network) Comm(rank int) (*Comm, error) {
	if rank < 0 || rank >= n.size {
		return nil, ErrRankRange
	}
	return &Comm{net: n, rank: rank}, nil
}

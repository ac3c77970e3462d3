package allocator

// pool holds every region of one size class, threaded through a single
// doubly-linked list (spec §3: "Pool ... Holds: the head region pointer,
// and an available_bytes counter"). Regions from different mappings of
// the same class share one list; mapping_id on the header is what tells
// two adjacent-in-the-list regions apart from two adjacent-in-address
// regions of the same mapping (only the latter may ever be coalesced).
type pool struct {
	class          SizeClass
	head           regionCursor
	availableBytes uintptr
}

// prepend splices a freshly-mapped whole-mapping region onto the front
// of the list, as mapping.go's newMapping does for every fresh mapping.
func (p *pool) prepend(c regionCursor) {
	h := c.header()
	h.next = p.head
	h.prev = nilCursor

	if p.head.valid() {
		p.head.header().prev = c
	}

	p.head = c
}

// remove detaches c from the list, relinking its neighbors. Used when a
// whole-mapping free region is unmapped (spec §4.2's release_mapping);
// coalesce unlinks the region it consumes itself.
func (p *pool) remove(c regionCursor) {
	h := c.header()

	if h.prev.valid() {
		h.prev.header().next = h.next
	} else {
		p.head = h.next
	}

	if h.next.valid() {
		h.next.header().prev = h.prev
	}
}

// growAvailable and shrinkAvailable adjust the pool's free-byte counter.
// Every payload-size delta flows through one of these two so
// available_bytes never drifts out of sync with the free regions that
// back it (spec §8's invariant).
func (p *pool) growAvailable(bytes uintptr) {
	p.availableBytes += bytes
}

func (p *pool) shrinkAvailable(bytes uintptr) {
	p.availableBytes -= bytes
}

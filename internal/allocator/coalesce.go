package allocator

// coalesceable reports whether l and r may be merged: same mapping, and
// both currently free (spec §4.6).
func coalesceable(l, r regionCursor) bool {
	if !l.valid() || !r.valid() {
		return false
	}

	lh, rh := l.header(), r.header()

	return lh.mappingID == rh.mappingID && lh.free && rh.free
}

// coalesce merges r into l: l absorbs r's payload plus the header bytes
// r occupied, and r is unlinked from p's list. l and r must be adjacent
// regions of the same mapping, and r must be free. When l is free too
// (coalesceable(l, r)), the header bytes r occupied become free payload
// and are added to p's available bytes; when l is allocated (Realloc's
// in-place growth), the caller does the accounting. After this call r's
// header is garbage — nothing may address it again.
func coalesce(p *pool, l, r regionCursor) {
	lh, rh := l.header(), r.header()

	lh.next = rh.next
	if rh.next.valid() {
		rh.next.header().prev = l
	}

	lh.payloadSize += uint32(headerSize) + rh.payloadSize
	if lh.free {
		p.growAvailable(headerSize)
	}

	if p.head == r {
		p.head = l
	}
}

// coalesceAround attempts to merge c with its right neighbor, then with
// its (possibly new) left neighbor, and returns the surviving region —
// spec §4.8 step 4: "Attempt coalesce with the right neighbor, then with
// the left neighbor; adopt the resulting head region."
func coalesceAround(p *pool, c regionCursor) regionCursor {
	h := c.header()

	if coalesceable(c, h.next) {
		coalesce(p, c, h.next)
	}

	if prev := c.header().prev; coalesceable(prev, c) {
		coalesce(p, prev, c)
		c = prev
	}

	return c
}

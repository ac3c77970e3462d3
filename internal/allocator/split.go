package allocator

// split carves a region of exactly s payload bytes out of a region r
// whose current payload is at least s, per spec §4.5. If the surplus
// left over would be unusable (smaller than two headers plus MinPayload),
// r is handed over whole instead of leaving an unsplittable sliver;
// otherwise a new free region is spliced in directly after r in p's
// list. r is always returned marked allocated.
//
// split also returns consumedFromFreePool: the number of payload
// bytes that moved out of "tracked as free" as a direct result of this
// call (s+headerSize if a sliver was carved off and left free, or r's
// entire former payload if the whole region was consumed). Spec §4.7
// step 6 phrases the pool accounting as "decrement available_bytes by
// the final payload_size of the returned region" — literally s, taken
// straight from the reference implementation's update_available_space
// call, which never accounts for the header bytes a split consumes out
// of what used to be free payload. Taken literally that drifts
// available_bytes high by headerSize on every split that actually
// carves a sliver, violating the "available_bytes equals the sum of
// free payload_size" invariant spec §8 states as binding and testable.
// This implementation reports the true consumed-from-free amount
// instead, and callers (alloc.go) use it to keep the counter exact;
// see DESIGN.md for the full writeup of this decision.
func split(p *pool, r regionCursor, s uintptr) (_ regionCursor, consumedFromFreePool uintptr) {
	h := r.header()
	oldPayload := uintptr(h.payloadSize)
	surplus := oldPayload - s

	if surplus < 2*headerSize+MinPayload {
		h.free = false

		return r, oldPayload
	}

	// Spec §4.5 places R' at R + H + s, not at the end of R's current
	// (pre-split) payload — the surplus after s bytes is what becomes
	// R's new sibling region.
	rprime := regionCursor(uintptr(r) + headerSize + s)
	rp := rprime.header()
	*rp = regionHeader{
		mappingID:   h.mappingID,
		sizeClass:   h.sizeClass,
		free:        true,
		payloadSize: uint32(surplus - headerSize),
		next:        h.next,
		prev:        r,
	}

	if h.next.valid() {
		h.next.header().prev = rprime
	}

	h.next = rprime
	h.payloadSize = uint32(s)
	h.free = false

	return r, oldPayload - uintptr(rp.payloadSize)
}

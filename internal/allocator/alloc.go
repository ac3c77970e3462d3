package allocator

import "unsafe"

// Allocate reserves r bytes and returns a pointer to them, or nil (the
// fail sentinel, spec §4.7) if the request cannot be satisfied.
//
// Spec §9 flags that the reference implementation increments its
// statistics counters before validating the request size, which is
// observable when a too-large request still bumps Allocs and
// RequestedBytes (spec §8 scenario 2). This implementation preserves
// that ordering deliberately, not by accident: it is specified as the
// binding, testable behavior in §8, so "decide whether to preserve" is
// resolved here in favor of preserving it.
func (ctx *Context) Allocate(r uintptr) unsafe.Pointer {
	if r == 0 {
		return nil
	}

	ctx.stats.Allocs++
	ctx.stats.RequestedBytes += int64(r)

	s := normalize(r)
	if s > payloadCapacity(ClassLarge) {
		return nil
	}

	return ctx.allocateNormalized(s)
}

// allocateNormalized performs steps 5-7 of spec §4.7 once r has already
// been validated and normalized to s.
func (ctx *Context) allocateNormalized(s uintptr) unsafe.Pointer {
	native := nativeClass(s)

	c, p := ctx.findFreeRegion(native, s)
	if !c.valid() {
		c = ctx.newMapping(native)
		if !c.valid() {
			return nil
		}

		p = ctx.poolFor(native)
	}

	// c came from findFreeRegion/newMapping already free and already
	// counted in p.availableBytes; split() reports exactly how much of
	// that tracked-free payload just became allocated.
	c, consumed := split(p, c, s)
	p.shrinkAvailable(consumed)

	return c.payload()
}

// Free returns a previously allocated payload pointer to its pool,
// coalescing with neighbors and releasing the backing mapping if it
// becomes entirely idle (spec §4.8). ptr == nil (the fail sentinel) is
// counted in Frees and otherwise a no-op.
func (ctx *Context) Free(ptr unsafe.Pointer) {
	ctx.stats.Frees++

	if ptr == nil {
		return
	}

	ctx.freeRegion(cursorFromPayload(ptr))
}

// freeRegion implements spec §4.8 steps 3-5, shared between the public
// Free and Realloc's internal relocation path (which must free the old
// region without incrementing the Frees counter a second time: spec
// §8's free(allocate(n)) round-trip law is about the externally visible
// operation pair, not about bookkeeping Realloc performs internally).
func (ctx *Context) freeRegion(c regionCursor) {
	h := c.header()
	h.free = true

	p := ctx.poolFor(h.sizeClass)
	p.growAvailable(uintptr(h.payloadSize))

	c = coalesceAround(p, c)
	h = c.header()

	if h.free && uintptr(h.payloadSize) == payloadCapacity(h.sizeClass) {
		ctx.releaseMapping(p, c)
	}
}

// ZeroedAllocate is Allocate(n*m) with the returned payload's first n*m
// bytes zeroed, spec §4.9. A failed Allocate propagates as nil without
// writing anything.
func (ctx *Context) ZeroedAllocate(n, m uintptr) unsafe.Pointer {
	ptr := ctx.Allocate(n * m)
	if ptr == nil {
		return nil
	}

	buf := unsafe.Slice((*byte)(ptr), n*m)
	for i := range buf {
		buf[i] = 0
	}

	return ptr
}

// Realloc resizes the allocation at ptr to r bytes, per spec §4.10.
func (ctx *Context) Realloc(ptr unsafe.Pointer, r uintptr) unsafe.Pointer {
	if ptr == nil {
		return ctx.Allocate(r)
	}

	if r == 0 {
		ctx.Free(ptr)
		return nil
	}

	if r > payloadCapacity(ClassLarge) {
		return nil
	}

	c := cursorFromPayload(ptr)
	h := c.header()
	oldPayload := uintptr(h.payloadSize)
	s := normalize(r)

	ctx.stats.RequestedBytes += int64(r) - int64(oldPayload)

	p := ctx.poolFor(h.sizeClass)

	if s < oldPayload {
		return ctx.reallocShrink(p, c, s)
	}

	if shrunk := ctx.reallocGrowInPlace(p, c, s); shrunk != nil {
		return shrunk
	}

	return ctx.reallocRelocate(c, oldPayload, r, s)
}

// reallocShrink implements spec §4.10's "s < R.payload_size" branch: c
// is currently allocated and therefore not tracked in p.availableBytes,
// so any free sliver split() carves off must be added to the pool, not
// subtracted from it.
//
// Unlike reallocGrowInPlace, c going into this call was allocated, so
// its right neighbor's free/allocated state is unconstrained — it may
// already be free (c's neighbors were never touched by this realloc's
// own coalescing). Left uncoalesced, the new sliver split() carves off
// would sit directly next to an already-free region, violating spec
// §8's "no two adjacent same-mapping regions are both free" invariant.
// Attempt the same right-neighbor coalesce freeRegion's coalesceAround
// performs after a plain free.
func (ctx *Context) reallocShrink(p *pool, c regionCursor, s uintptr) unsafe.Pointer {
	oldPayload := uintptr(c.header().payloadSize)

	newC, consumed := split(p, c, s)

	if leftover := oldPayload - consumed; leftover > 0 {
		p.growAvailable(leftover)

		if sliver := newC.header().next; coalesceable(sliver, sliver.header().next) {
			coalesce(p, sliver, sliver.header().next)
		}
	}

	return newC.payload()
}

// reallocGrowInPlace implements spec §4.10's in-place expansion
// shortcut: if the immediate right neighbor is free, same mapping, and
// together with c holds enough bytes, absorb it and split back down to
// s. Returns nil if the shortcut does not apply, in which case Realloc
// falls back to relocating.
//
// Spec §9 flags that the reference implementation dereferences
// curr->next unconditionally here, undefined behavior when curr is the
// last region in its mapping; next.valid() (last in the pool's list) and
// the mapping-id check (next belongs to another mapping) guard that
// explicitly.
func (ctx *Context) reallocGrowInPlace(p *pool, c regionCursor, s uintptr) unsafe.Pointer {
	h := c.header()

	next := h.next
	if !next.valid() {
		return nil
	}

	nh := next.header()
	if !nh.free || nh.mappingID != h.mappingID {
		return nil
	}

	combined := uintptr(h.payloadSize) + headerSize + uintptr(nh.payloadSize)
	if combined < s {
		return nil
	}

	// next's payload is leaving the free pool to be absorbed into c's
	// allocation; c's own payload was never tracked (it was allocated).
	p.shrinkAvailable(uintptr(nh.payloadSize))
	coalesce(p, c, next)

	merged, consumed := split(p, c, s)
	if leftover := combined - consumed; leftover > 0 {
		p.growAvailable(leftover)
	}

	return merged.payload()
}

// reallocRelocate implements spec §4.10's fallback: allocate s bytes
// fresh, copy the smaller of the old and new sizes across, and free the
// original. Leaves ptr's region untouched if the fresh allocation fails
// (spec §4.13).
func (ctx *Context) reallocRelocate(c regionCursor, oldPayload, r, s uintptr) unsafe.Pointer {
	fresh := ctx.allocateNormalized(s)
	if fresh == nil {
		ctx.stats.RequestedBytes -= int64(r) - int64(oldPayload)
		return nil
	}

	copySize := oldPayload
	if s < copySize {
		copySize = s
	}

	copyMemory(fresh, c.payload(), copySize)
	ctx.freeRegion(c)

	return fresh
}

// copyMemory copies n bytes from src to dst, both presumed non-nil and
// non-overlapping (a client's old and new allocations never alias).
func copyMemory(dst, src unsafe.Pointer, n uintptr) {
	copy(unsafe.Slice((*byte)(dst), n), unsafe.Slice((*byte)(src), n))
}

package allocator

import "unsafe"

// newMapping requests a whole backing mapping for class from the
// configured Mapper, lays down a single free region spanning it, and
// links that region into the pool (spec §4.2). It returns the fail
// cursor (nilCursor) if the Mapper refuses.
func (ctx *Context) newMapping(class SizeClass) regionCursor {
	size := mappingBytes(class)

	base, err := ctx.mapper.Map(size)
	if err != nil || base == nil {
		return nilCursor
	}

	ctx.nextMappingID++

	c := regionCursor(uintptr(base))
	h := c.header()
	*h = regionHeader{
		mappingID:   ctx.nextMappingID,
		sizeClass:   class,
		free:        true,
		payloadSize: uint32(size - headerSize),
	}

	p := ctx.poolFor(class)
	p.prepend(c)
	p.growAvailable(uintptr(h.payloadSize))

	return c
}

// releaseMapping hands a whole-mapping free region back to the Mapper.
// Precondition (enforced by the caller, per spec §4.2): c is free and
// its payloadSize equals mappingBytes(class)-headerSize, i.e. it is the
// sole region in its mapping.
func (ctx *Context) releaseMapping(p *pool, c regionCursor) {
	h := c.header()
	size := mappingBytes(h.sizeClass)

	p.remove(c)
	p.shrinkAvailable(uintptr(h.payloadSize))

	// Best-effort: spec §4.13 gives the allocator no retry path and no
	// way to surface an Unmap failure through Free's signature. A
	// failed Unmap leaves the OS mapping resident but already detached
	// from every pool list and counter, which is the same leak shape
	// the reference implementation risks on a failed munmap(2).
	_ = ctx.mapper.Unmap(unsafe.Pointer(uintptr(c)), size)
}

package allocator

// FitStrategy selects how a pool's free list is searched for a region
// that fits a request. Spec §4.3/§6 treats this as a build-time choice;
// spec §9 directs that it become a runtime Config option instead so both
// strategies can be exercised in one test binary.
type FitStrategy int

const (
	// FitFirstFit returns the first free region encountered that is big
	// enough.
	FitFirstFit FitStrategy = iota
	// FitBestFit returns, among the free regions in the same mapping as
	// the first fit, the smallest one that is big enough.
	FitBestFit
	// FitNone never searches: every allocation grows the heap. This is
	// the observable behavior of the original source when neither
	// FIRST_FIT nor BEST_FIT is defined (spec §6).
	FitNone
)

// findFirstFit returns the first free region in p's list, of any
// mapping, whose payload is at least s bytes. Spec §4.3 states the
// invariant as payload_size >= s; the reference implementation's
// find_first_fit instead used a strict payload_size < s rejection,
// which silently excludes an exact-size match. That is flagged in spec
// §9 as a likely source bug to decide on explicitly rather than copy:
// this implementation uses the non-strict test the prose specifies, so
// an exact-size free region is returned rather than skipped.
func findFirstFit(p *pool, s uintptr) regionCursor {
	for c := p.head; c.valid(); c = c.header().next {
		h := c.header()
		if h.free && uintptr(h.payloadSize) >= s {
			return c
		}
	}

	return nilCursor
}

// findBestFit implements spec §4.3's two-phase best-fit: first locate
// any fitting region to pin down a mapping id, then scan only that
// mapping's regions for the smallest adequate one, returning immediately
// on an exact match. Ties (equal payload size to the current best) are
// broken by list order, i.e. the first one seen is kept.
func findBestFit(p *pool, s uintptr) regionCursor {
	first := findFirstFit(p, s)
	if !first.valid() {
		return nilCursor
	}

	mappingID := first.header().mappingID
	best := first

	for c := p.head; c.valid(); c = c.header().next {
		h := c.header()
		if h.mappingID != mappingID || !h.free {
			continue
		}

		size := uintptr(h.payloadSize)
		if size == s {
			return c
		}

		if size >= s && size < uintptr(best.header().payloadSize) {
			best = c
		}
	}

	return best
}

// search picks the search function for ctx's configured strategy.
func (ctx *Context) search(p *pool, s uintptr) regionCursor {
	switch ctx.fitStrategy {
	case FitFirstFit:
		return findFirstFit(p, s)
	case FitBestFit:
		return findBestFit(p, s)
	default: // FitNone
		return nilCursor
	}
}

// findFreeRegion implements spec §4.4: try the request's native class,
// gated by available_bytes, then escalate to successively larger
// classes on failure. Large requests never escalate. Each pool dispatch
// here is exclusive to its own class — the reference implementation's
// switch-based counter/list updates fell through every case on a single
// call (spec §9); Go's switch does not fall through by default, which
// organically avoids reproducing that bug here.
func (ctx *Context) findFreeRegion(native SizeClass, s uintptr) (regionCursor, *pool) {
	for _, class := range append([]SizeClass{native}, fallbackClasses(native)...) {
		p := ctx.poolFor(class)
		if s > p.availableBytes {
			continue
		}

		if c := ctx.search(p, s); c.valid() {
			return c, p
		}
	}

	return nilCursor, nil
}

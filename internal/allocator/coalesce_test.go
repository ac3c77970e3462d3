package allocator

import "testing"

func TestCoalesceableRequiresSameMappingAndBothFree(t *testing.T) {
	ctx, _ := newTestContext(t)

	a := ctx.Allocate(200)
	b := ctx.Allocate(200)

	ca := cursorFromPayload(a)
	cb := cursorFromPayload(b)

	if coalesceable(ca, cb) {
		t.Fatal("two allocated regions must never be coalesceable")
	}

	ctx.Free(a)
	ctx.Free(b)

	// Both freed: a and b are no longer valid cursors to rely on (they
	// may have already coalesced with each other or unmapped), so this
	// just checks the nilCursor edge explicitly.
	if coalesceable(nilCursor, nilCursor) {
		t.Fatal("nilCursor must never be coalesceable")
	}
}

// Freeing two adjacent regions must leave no two adjacent free regions
// in the same mapping (spec §4.8 step 4's invariant).
func TestFreeCoalescesAdjacentRegions(t *testing.T) {
	ctx, _ := newTestContext(t)

	a := ctx.Allocate(300)
	b := ctx.Allocate(300)
	c := ctx.Allocate(300)

	ctx.Free(b)
	ctx.Free(a)

	// a and b should now be one merged free region starting at a's
	// former address.
	merged := cursorFromPayload(a)
	h := merged.header()
	if !h.free {
		t.Fatal("merged region should be free")
	}

	if h.next.valid() && h.next.header().free {
		t.Fatal("no two adjacent free regions may survive a free()")
	}

	ctx.Free(c)
}

func TestCoalesceAroundMergesBothNeighbors(t *testing.T) {
	ctx, m := newTestContext(t)

	a := ctx.Allocate(300)
	b := ctx.Allocate(300)
	c := ctx.Allocate(300)

	ctx.Free(a)
	ctx.Free(c)

	if m.liveMappings() != 1 {
		t.Fatalf("freeing the two outer regions must not release the mapping while the middle is still allocated, got %d live", m.liveMappings())
	}

	ctx.Free(b)

	// a, b, c and the free tail after c together spanned the whole
	// mapping (SMALL's native class, first mapping, nothing else carved
	// from it), and c absorbed that tail when it was freed. So freeing
	// the middle region must coalesce with both neighbors at once and
	// the resulting whole-mapping free region is then unmapped.
	if got := m.liveMappings(); got != 0 {
		t.Fatalf("expected the fully-coalesced mapping to be released, got %d live", got)
	}
}

// Shrinking an allocation via Realloc must not leave the sliver it
// carves off adjacent to an already-free region. Repro: free the
// middle of three same-size allocations (its neighbors stay allocated,
// so no coalesce fires), then shrink the first region enough that
// split produces a sliver sitting right next to that already-free
// middle region.
func TestReallocShrinkCoalescesNewSliverWithFreeRightNeighbor(t *testing.T) {
	ctx, _ := newTestContext(t)

	a := ctx.Allocate(500)
	b := ctx.Allocate(500)
	c := ctx.Allocate(500)

	ctx.Free(b)

	q := ctx.Realloc(a, 100)
	if q == nil {
		t.Fatal("realloc(a, 100) failed")
	}

	shrunk := cursorFromPayload(q)
	sliver := shrunk.header().next
	if !sliver.valid() || !sliver.header().free {
		t.Fatal("expected a free sliver to survive the shrink")
	}

	if next := sliver.header().next; next.valid() && next.header().free {
		t.Fatal("the new sliver must not be left adjacent to another free region")
	}

	ctx.Free(c)
}

func TestReleaseMappingUnmapsWhenWholeMappingGoesFree(t *testing.T) {
	ctx, m := newTestContext(t)

	p := ctx.Allocate(100)
	if m.liveMappings() != 1 {
		t.Fatalf("expected 1 live mapping after a single small allocate, got %d", m.liveMappings())
	}

	ctx.Free(p)

	if got := m.liveMappings(); got != 0 {
		t.Fatalf("expected the sole mapping to be released after its only region was freed, got %d live", got)
	}
}

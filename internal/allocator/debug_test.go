package allocator

import (
	"strings"
	"testing"
)

func TestDebugPoolsReportsAllocatedAndFreeRegions(t *testing.T) {
	ctx, _ := newTestContext(t)

	p := ctx.Allocate(200)
	ctx.Allocate(200)
	ctx.Free(p)

	out := ctx.DebugPools()

	if !strings.Contains(out, "small pool:") {
		t.Fatalf("DebugPools output missing small pool header: %q", out)
	}

	if !strings.Contains(out, "free") {
		t.Fatalf("DebugPools output missing a free region after Free: %q", out)
	}

	if !strings.Contains(out, "allocated") {
		t.Fatalf("DebugPools output missing the still-allocated region: %q", out)
	}
}

func TestDebugPoolsOnEmptyContextListsAllThreeClassesWithNoRegions(t *testing.T) {
	ctx, _ := newTestContext(t)

	out := ctx.DebugPools()

	for _, want := range []string{"small pool:", "medium pool:", "large pool:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("DebugPools output missing %q: %q", want, out)
		}
	}

	if strings.Contains(out, "region mapping=") {
		t.Fatal("an empty Context should report no regions")
	}
}

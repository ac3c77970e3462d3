// Command segbench drives the allocator through a churn workload of
// allocate/realloc/free calls and reports the resulting statistics.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"unsafe"

	"github.com/fisop/segalloc/internal/allocator"
)

func main() {
	var (
		ops     = flag.Int("ops", 10000, "number of allocator operations to perform")
		seed    = flag.Int64("seed", 1, "random seed for the workload")
		maxSize = flag.Int("max-size", 1<<20, "largest single request size in bytes")
		fit     = flag.String("fit", "first", "fit strategy: first, best, or none")
		dump    = flag.Bool("dump", false, "print the final pool layout to stderr")
	)
	flag.Parse()

	strategy, err := parseFitStrategy(*fit)
	if err != nil {
		log.Fatalf("segbench: %v", err)
	}

	ctx := allocator.NewContext(allocator.WithFitStrategy(strategy))

	if err := runWorkload(ctx, *ops, *seed, uintptr(*maxSize)); err != nil {
		log.Fatalf("segbench: %v", err)
	}

	if *dump {
		fmt.Fprintln(os.Stderr, ctx.DebugPools())
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ctx.Stats()); err != nil {
		log.Fatalf("segbench: encode stats: %v", err)
	}
}

func parseFitStrategy(s string) (allocator.FitStrategy, error) {
	switch s {
	case "first":
		return allocator.FitFirstFit, nil
	case "best":
		return allocator.FitBestFit, nil
	case "none":
		return allocator.FitNone, nil
	default:
		return 0, fmt.Errorf("unknown fit strategy %q (want first, best, or none)", s)
	}
}

// runWorkload issues a mix of allocate, realloc, and free calls against
// live, simulating a program that holds a fluctuating set of live
// buffers rather than allocating and immediately freeing.
func runWorkload(ctx *allocator.Context, ops int, seed int64, maxSize uintptr) error {
	rng := rand.New(rand.NewSource(seed))
	live := make([]uintptr, 0, ops)

	for i := 0; i < ops; i++ {
		switch {
		case len(live) == 0 || rng.Intn(3) != 0:
			size := uintptr(rng.Int63n(int64(maxSize))) + 1
			p := ctx.Allocate(size)
			if p != nil {
				live = append(live, uintptr(ptrAsInt(p)))
			}
		case rng.Intn(2) == 0:
			idx := rng.Intn(len(live))
			ctx.Free(intAsPtr(live[idx]))
			live = append(live[:idx], live[idx+1:]...)
		default:
			idx := rng.Intn(len(live))
			size := uintptr(rng.Int63n(int64(maxSize))) + 1
			q := ctx.Realloc(intAsPtr(live[idx]), size)
			if q != nil {
				live[idx] = uintptr(ptrAsInt(q))
			}
		}
	}

	for _, p := range live {
		ctx.Free(intAsPtr(p))
	}

	return nil
}

// ptrAsInt and intAsPtr round-trip a payload address through uintptr so
// the workload's live set can hold plain values instead of
// unsafe.Pointer. Safe here because every payload address comes from a
// Mapper-backed mapping outside the Go heap, not from anything the
// garbage collector tracks or moves.
func ptrAsInt(p unsafe.Pointer) uintptr {
	return uintptr(p)
}

func intAsPtr(n uintptr) unsafe.Pointer {
	return unsafe.Pointer(n) //nolint:govet // deliberate: n is a raw mapping address, not a Go-managed pointer
}

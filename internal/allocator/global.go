package allocator

import "unsafe"

// defaultContext backs the package-level convenience functions below.
// It is constructed lazily on first use rather than in an init() func,
// so a program that only ever constructs its own Context (see
// NewContext) never pays for a default one it doesn't use.
var defaultContext *Context

func defaultCtx() *Context {
	if defaultContext == nil {
		defaultContext = NewContext()
	}

	return defaultContext
}

// Configure replaces the package-level default Context with one built
// from the given options. It is only meaningful before the default
// Context has serviced any allocation; like Context itself, it is not
// safe to call concurrently with Allocate/Free/ZeroedAllocate/Realloc.
func Configure(opts ...Option) {
	defaultContext = NewContext(opts...)
}

// Allocate allocates from the package-level default Context.
func Allocate(r uintptr) unsafe.Pointer {
	return defaultCtx().Allocate(r)
}

// Free frees through the package-level default Context.
func Free(ptr unsafe.Pointer) {
	defaultCtx().Free(ptr)
}

// ZeroedAllocate allocates and zeroes through the package-level default
// Context.
func ZeroedAllocate(n, m uintptr) unsafe.Pointer {
	return defaultCtx().ZeroedAllocate(n, m)
}

// Realloc reallocates through the package-level default Context.
func Realloc(ptr unsafe.Pointer, r uintptr) unsafe.Pointer {
	return defaultCtx().Realloc(ptr, r)
}

// GetStats snapshots the package-level default Context's statistics.
func GetStats() Stats {
	return defaultCtx().Stats()
}

// Package allocator implements a segregated-pool memory allocator backed
// directly by anonymous OS mappings. Requests are classified into one of
// three size classes (small, medium, large), each backed by its own chain
// of mmap-style mappings; free space within a class is tracked with an
// intrusive doubly-linked list of regions and reused by first-fit or
// best-fit search before a new mapping is requested from the OS.
//
// The zero value of Context is not usable; construct one with NewContext.
// A lazily-initialized package-level default context backs the
// Allocate/Free/ZeroedAllocate/Realloc/GetStats convenience functions,
// alongside the explicit Context type for callers who want one allocator
// per goroutine.
//
// Context is not safe for concurrent use. Give each goroutine its own
// Context, or guard a shared one with an external mutex.
package allocator

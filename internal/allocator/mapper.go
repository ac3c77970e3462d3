package allocator

import (
	"errors"
	"unsafe"
)

// Mapper is the OS interface this allocator treats as an external
// collaborator (spec §1, §6): a source of whole, page-aligned,
// readable/writable anonymous mappings, and a way to give them back.
// Map returns the mapping's base address; Unmap releases a mapping
// previously returned by Map, given the same base and size.
type Mapper interface {
	Map(size uintptr) (unsafe.Pointer, error)
	Unmap(base unsafe.Pointer, size uintptr) error
}

// ErrMapFailed is wrapped by the error a Mapper returns when it cannot
// satisfy a request; the allocator never inspects this value, it only
// propagates the fail sentinel to the caller (spec §4.13), but callers
// driving a Mapper directly in tests benefit from a stable sentinel to
// compare against.
var ErrMapFailed = errors.New("allocator: mapper failed to provide memory")

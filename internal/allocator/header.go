package allocator

import "unsafe"

// regionHeader is the on-mapping metadata record embedded at the start of
// every region (spec §3). It is never instantiated by Go's allocator —
// it is laid over raw bytes returned by a Mapper — so its fields use
// regionCursor (a bare address, uintptr under the hood) rather than typed
// Go pointers for the linkage. Spec §9 asks for exactly this: "wrap
// raw-address manipulation in a narrow unsafe boundary and expose a safe
// region-cursor type." Using uintptr instead of *regionHeader for next/
// prev keeps Go's garbage collector from ever being asked to trace a
// pointer into memory it doesn't own (the mapping came from mmap/
// VirtualAlloc, not from the Go heap).
type regionHeader struct {
	mappingID   uint64
	sizeClass   SizeClass
	free        bool
	_           [2]byte // padding, keeps payloadSize 4-byte aligned
	payloadSize uint32
	next        regionCursor
	prev        regionCursor
}

// regionCursor is the address of a regionHeader. The zero cursor never
// denotes a real region and is used as "no region" (e.g. prev of the
// first region in a pool's list, next of the last).
type regionCursor uintptr

// nilCursor is the distinguished "no region" cursor.
const nilCursor regionCursor = 0

func (c regionCursor) valid() bool {
	return c != nilCursor
}

func (c regionCursor) header() *regionHeader {
	return (*regionHeader)(unsafe.Pointer(uintptr(c)))
}

// payload returns the address immediately following the header: the
// pointer a client actually receives.
func (c regionCursor) payload() unsafe.Pointer {
	return unsafe.Pointer(uintptr(c) + headerSize)
}

// cursorFromPayload recovers a region's header address from the pointer
// a client holds, by walking back one header-size (spec §4.8 step 2).
func cursorFromPayload(p unsafe.Pointer) regionCursor {
	return regionCursor(uintptr(p) - headerSize)
}

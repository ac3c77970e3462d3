//go:build windows

package allocator

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// osMapper requests anonymous private mappings via VirtualAlloc/
// VirtualFree, the Windows equivalent of mmap/munmap exposed by the same
// golang.org/x/sys module the unix build uses.
type osMapper struct{}

// NewOSMapper returns the default Mapper for this platform.
func NewOSMapper() Mapper {
	return osMapper{}
}

func (osMapper) Map(size uintptr) (unsafe.Pointer, error) {
	addr, err := windows.VirtualAlloc(0, size, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, fmt.Errorf("%w: VirtualAlloc %d bytes: %v", ErrMapFailed, size, err)
	}

	return unsafe.Pointer(addr), nil
}

func (osMapper) Unmap(base unsafe.Pointer, _ uintptr) error {
	if err := windows.VirtualFree(uintptr(base), 0, windows.MEM_RELEASE); err != nil {
		return fmt.Errorf("VirtualFree %#x: %w", uintptr(base), err)
	}

	return nil
}

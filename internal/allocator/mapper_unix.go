//go:build unix

package allocator

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// osMapper requests anonymous private mappings directly from the kernel
// via mmap(2)/munmap(2), through golang.org/x/sys/unix.
//
// unix.Mmap hands back a []byte whose backing array is the mapping
// itself, not Go-heap memory; Go's garbage collector never scans or
// moves it. unix.Munmap takes that same slice back, so osMapper keeps
// one per outstanding mapping, keyed by base address, for Unmap to hand
// over — the bytes are never read through it.
type osMapper struct {
	mu     sync.Mutex
	active map[uintptr][]byte
}

// NewOSMapper returns the default Mapper for this platform.
func NewOSMapper() Mapper {
	return &osMapper{active: make(map[uintptr][]byte)}
}

func (m *osMapper) Map(size uintptr) (unsafe.Pointer, error) {
	buf, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %v", ErrMapFailed, size, err)
	}

	base := uintptr(unsafe.Pointer(&buf[0]))

	m.mu.Lock()
	m.active[base] = buf
	m.mu.Unlock()

	return unsafe.Pointer(&buf[0]), nil
}

func (m *osMapper) Unmap(base unsafe.Pointer, size uintptr) error {
	addr := uintptr(base)

	m.mu.Lock()
	buf, ok := m.active[addr]
	delete(m.active, addr)
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("allocator: unmap of untracked base %#x", addr)
	}

	if err := unix.Munmap(buf); err != nil {
		return fmt.Errorf("munmap %#x (%d bytes): %w", addr, size, err)
	}

	return nil
}

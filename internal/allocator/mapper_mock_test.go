package allocator

import "unsafe"

// mockMapper backs tests with ordinary Go-allocated memory instead of a
// real OS mapping, so unit tests are fast, deterministic, and portable
// across every platform this package builds on, swapped in behind the
// Mapper interface via WithMapper rather than hitting real syscalls.
//
// Go's garbage collector does not know about the uintptr-typed linkage
// this package stores inside mapped memory, so mockMapper keeps a real
// []byte reference to every outstanding mapping — exactly the role
// osMapper's own "active" map plays for real mmap'd memory, just for a
// different reason (there it is bookkeeping for Munmap; here it is also
// what stops Go from collecting the backing array).
type mockMapper struct {
	active  map[uintptr][]byte
	mapped  int
	failNth int // if > 0, the failNth call to Map fails
}

func newMockMapper() *mockMapper {
	return &mockMapper{active: make(map[uintptr][]byte)}
}

func (m *mockMapper) Map(size uintptr) (unsafe.Pointer, error) {
	m.mapped++
	if m.failNth > 0 && m.mapped == m.failNth {
		return nil, ErrMapFailed
	}

	buf := make([]byte, size)
	base := uintptr(unsafe.Pointer(&buf[0]))
	m.active[base] = buf

	return unsafe.Pointer(&buf[0]), nil
}

func (m *mockMapper) Unmap(base unsafe.Pointer, _ uintptr) error {
	delete(m.active, uintptr(base))

	return nil
}

func (m *mockMapper) liveMappings() int {
	return len(m.active)
}

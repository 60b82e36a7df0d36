package store

// MemoryBackend is an in-memory Backend for tests and dry runs.
type MemoryBackend struct {
	data map[string][]byte

	// FailWrites makes Set and Delete return an error, for exercising the
	// best-effort persistence path.
	FailWrites bool
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

// Get reads one key.
func (m *MemoryBackend) Get(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return v, true, nil
}

// Set writes one key.
func (m *MemoryBackend) Set(key string, value []byte) error {
	if m.FailWrites {
		return errWriteFailed
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

// Delete removes one key.
func (m *MemoryBackend) Delete(key string) error {
	if m.FailWrites {
		return errWriteFailed
	}
	delete(m.data, key)
	return nil
}

// Close is a no-op.
func (m *MemoryBackend) Close() error { return nil }

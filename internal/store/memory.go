package store

// Memory is an in-process Store.
type Memory struct {
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value for key.
func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.values[key] = value
	return nil
}

// Delete removes key.
func (m *Memory) Delete(key string) {
	delete(m.values, key)
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}

package registry

import "sync"

type memoryStore struct {
	mu     sync.RWMutex
	byName map[string]uint32
	byID   map[uint32]string
}

func NewMemoryStore() Store {
	return &memoryStore{
		byName: make(map[string]uint32),
		byID:   make(map[uint32]string),
	}
}

func (m *memoryStore) Put(name string, id uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.byName[name]; ok {
		delete(m.byID, old)
	}
	m.byName[name] = id
	m.byID[id] = name

	return nil
}

func (m *memoryStore) Get(name string) (uint32, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byName[name]
	return id, ok, nil
}

func (m *memoryStore) NameForID(id uint32) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name, ok := m.byID[id]
	return name, ok, nil
}

func (m *memoryStore) Count() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.byName), nil
}

func (m *memoryStore) Close() error {
	return nil
}

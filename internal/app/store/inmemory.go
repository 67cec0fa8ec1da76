package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/ekuzmina/link-shortener/internal/app/service"
)

// InMemoryStore хранит записи в памяти. Используется в тестах
// и как запасной вариант, когда не настроены ни база, ни файл.
type InMemoryStore struct {
	mu      sync.RWMutex
	byID    map[string]service.ShortURLRecord
	byCode  map[string]string
	ordered []string
}

func NewStore() *InMemoryStore {
	return &InMemoryStore{
		byID:   make(map[string]service.ShortURLRecord),
		byCode: make(map[string]string),
	}
}

func (m *InMemoryStore) FindAll(_ context.Context) ([]service.ShortURLRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]service.ShortURLRecord, 0, len(m.ordered))
	for _, id := range m.ordered {
		if record, exists := m.byID[id]; exists {
			results = append(results, record)
		}
	}
	return results, nil
}

func (m *InMemoryStore) FindByShortCode(_ context.Context, code string) (*service.ShortURLRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, exists := m.byCode[code]
	if !exists {
		return nil, service.ErrNotFound
	}
	record := m.byID[id]
	return &record, nil
}

func (m *InMemoryStore) FindByFullURLAndOwner(_ context.Context, fullURL, ownerID string) (*service.ShortURLRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, record := range m.byID {
		if record.FullURL == fullURL && record.OwnerID == ownerID {
			found := record
			return &found, nil
		}
	}
	return nil, service.ErrNotFound
}

func (m *InMemoryStore) FindByID(_ context.Context, id string) (*service.ShortURLRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.byID[id]
	if !exists {
		return nil, service.ErrNotFound
	}
	return &record, nil
}

func (m *InMemoryStore) FindByIDAndOwner(_ context.Context, id, ownerID string) (*service.ShortURLRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.byID[id]
	if !exists || record.OwnerID != ownerID {
		return nil, service.ErrNotFound
	}
	return &record, nil
}

func (m *InMemoryStore) Insert(_ context.Context, record service.ShortURLRecord) (service.ShortURLRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byCode[record.ShortCode]; exists {
		return service.ShortURLRecord{}, fmt.Errorf("%w: short code %q", service.ErrConflict, record.ShortCode)
	}
	for _, existing := range m.byID {
		if existing.FullURL == record.FullURL && existing.OwnerID == record.OwnerID {
			return service.ShortURLRecord{}, fmt.Errorf("%w: URL already shortened by owner", service.ErrConflict)
		}
	}

	m.byID[record.ID] = record
	m.byCode[record.ShortCode] = record.ID
	m.ordered = append(m.ordered, record.ID)
	return record, nil
}

func (m *InMemoryStore) IncrementClicks(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, exists := m.byID[id]
	if !exists {
		return service.ErrNotFound
	}
	record.Clicks++
	m.byID[id] = record
	return nil
}

func (m *InMemoryStore) DeleteByID(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, exists := m.byID[id]
	if !exists {
		return nil
	}
	delete(m.byID, id)
	delete(m.byCode, record.ShortCode)
	return nil
}

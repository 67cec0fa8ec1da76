package store

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/ekuzmina/link-shortener/internal/app/service"
)

// FileStore хранит записи в памяти и дублирует их в файл
// в формате JSON-строк, переживая перезапуск процесса.
type FileStore struct {
	mu       sync.RWMutex
	filePath string
	byID     map[string]service.ShortURLRecord
	byCode   map[string]string
}

func NewFileStore(filePath string) *FileStore {
	store := &FileStore{
		filePath: filePath,
		byID:     make(map[string]service.ShortURLRecord),
		byCode:   make(map[string]string),
	}
	store.loadFromFile()
	return store
}

func (fs *FileStore) loadFromFile() {
	file, err := os.Open(fs.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return // Если файла нет, продолжаем
		}
		log.Panic(err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var record service.ShortURLRecord
		if err := json.Unmarshal(scanner.Bytes(), &record); err == nil {
			fs.byID[record.ID] = record
			fs.byCode[record.ShortCode] = record.ID
		}
	}
}

func (fs *FileStore) appendToFile(record service.ShortURLRecord) error {
	file, err := os.OpenFile(fs.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	jsonData, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if _, err := file.Write(jsonData); err != nil {
		return err
	}
	_, err = file.Write([]byte("\n"))
	return err
}

func (fs *FileStore) rewriteFile() error {
	file, err := os.OpenFile(fs.filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, record := range fs.byID {
		jsonData, err := json.Marshal(record)
		if err != nil {
			return err
		}
		writer.Write(jsonData)
		writer.WriteString("\n")
	}
	return writer.Flush()
}

func (fs *FileStore) FindAll(_ context.Context) ([]service.ShortURLRecord, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	results := make([]service.ShortURLRecord, 0, len(fs.byID))
	for _, record := range fs.byID {
		results = append(results, record)
	}
	return results, nil
}

func (fs *FileStore) FindByShortCode(_ context.Context, code string) (*service.ShortURLRecord, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	id, exists := fs.byCode[code]
	if !exists {
		return nil, service.ErrNotFound
	}
	record := fs.byID[id]
	return &record, nil
}

func (fs *FileStore) FindByFullURLAndOwner(_ context.Context, fullURL, ownerID string) (*service.ShortURLRecord, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	for _, record := range fs.byID {
		if record.FullURL == fullURL && record.OwnerID == ownerID {
			found := record
			return &found, nil
		}
	}
	return nil, service.ErrNotFound
}

func (fs *FileStore) FindByID(_ context.Context, id string) (*service.ShortURLRecord, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	record, exists := fs.byID[id]
	if !exists {
		return nil, service.ErrNotFound
	}
	return &record, nil
}

func (fs *FileStore) FindByIDAndOwner(_ context.Context, id, ownerID string) (*service.ShortURLRecord, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	record, exists := fs.byID[id]
	if !exists || record.OwnerID != ownerID {
		return nil, service.ErrNotFound
	}
	return &record, nil
}

func (fs *FileStore) Insert(_ context.Context, record service.ShortURLRecord) (service.ShortURLRecord, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if _, exists := fs.byCode[record.ShortCode]; exists {
		return service.ShortURLRecord{}, fmt.Errorf("%w: short code %q", service.ErrConflict, record.ShortCode)
	}
	for _, existing := range fs.byID {
		if existing.FullURL == record.FullURL && existing.OwnerID == record.OwnerID {
			return service.ShortURLRecord{}, fmt.Errorf("%w: URL already shortened by owner", service.ErrConflict)
		}
	}

	fs.byID[record.ID] = record
	fs.byCode[record.ShortCode] = record.ID
	if err := fs.appendToFile(record); err != nil {
		return service.ShortURLRecord{}, err
	}

	return record, nil
}

func (fs *FileStore) IncrementClicks(_ context.Context, id string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	record, exists := fs.byID[id]
	if !exists {
		return service.ErrNotFound
	}
	record.Clicks++
	fs.byID[id] = record
	return fs.rewriteFile()
}

func (fs *FileStore) DeleteByID(_ context.Context, id string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	record, exists := fs.byID[id]
	if !exists {
		return nil
	}
	delete(fs.byID, id)
	delete(fs.byCode, record.ShortCode)
	return fs.rewriteFile()
}

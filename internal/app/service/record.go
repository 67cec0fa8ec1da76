// Package service содержит бизнес-логику работы с короткими ссылками.
package service

import "context"

// ShortURLRecord хранит данные одной записи сокращённого URL.
type ShortURLRecord struct {
	ID        string `json:"id"`
	FullURL   string `json:"full_url"`
	ShortCode string `json:"short_code"`
	OwnerID   string `json:"owner_id"`
	Clicks    int64  `json:"clicks"`
	QRCode    string `json:"qr_code"`
}

// Store объединяет все операции хранилища записей.
type Store interface {
	StoreRecordFinder
	StoreRecordWriter
}

// StoreRecordFinder описывает методы чтения записей из хранилища.
// Отсутствие записи возвращается как ErrNotFound.
type StoreRecordFinder interface {
	FindAll(ctx context.Context) ([]ShortURLRecord, error)
	FindByShortCode(ctx context.Context, code string) (*ShortURLRecord, error)
	FindByFullURLAndOwner(ctx context.Context, fullURL, ownerID string) (*ShortURLRecord, error)
	FindByID(ctx context.Context, id string) (*ShortURLRecord, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*ShortURLRecord, error)
}

// StoreRecordWriter описывает методы изменения записей в хранилище.
type StoreRecordWriter interface {
	Insert(ctx context.Context, record ShortURLRecord) (ShortURLRecord, error)
	IncrementClicks(ctx context.Context, id string) error
	DeleteByID(ctx context.Context, id string) error
}

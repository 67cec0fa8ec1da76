package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/ekuzmina/link-shortener/internal/app/qr"
	"github.com/ekuzmina/link-shortener/internal/app/utils"
	"github.com/google/uuid"
)

const shortCodeLength = 8

// URLShortener создаёт короткие ссылки для аутентифицированных пользователей.
type URLShortener interface {
	Create(ctx context.Context, fullURL, ownerID, baseURL string) (ShortURLRecord, bool, error)
}

type shortenStore interface {
	StoreRecordWriter
	FindByFullURLAndOwner(ctx context.Context, fullURL, ownerID string) (*ShortURLRecord, error)
}

type ShortenService struct {
	store   shortenStore
	encoder qr.Encoder
}

func NewShortenService(store shortenStore, encoder qr.Encoder) *ShortenService {
	return &ShortenService{store: store, encoder: encoder}
}

func isValidURL(input string) bool {
	parsedURI, err := url.ParseRequestURI(input)
	return err == nil && parsedURI.Scheme != "" && parsedURI.Host != ""
}

// Create сокращает fullURL для пользователя ownerID.
// Если такая ссылка у пользователя уже есть, возвращает существующую
// запись и existed = true, ничего не вставляя.
func (s *ShortenService) Create(ctx context.Context, fullURL, ownerID, baseURL string) (ShortURLRecord, bool, error) {
	if ownerID == "" {
		return ShortURLRecord{}, false, ErrUnauthorized
	}

	if !isValidURL(fullURL) {
		return ShortURLRecord{}, false, ErrInvalidURL
	}

	existing, err := s.store.FindByFullURLAndOwner(ctx, fullURL, ownerID)
	if err == nil {
		return *existing, true, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return ShortURLRecord{}, false, err
	}

	code := utils.RandomString(shortCodeLength)

	qrImage, err := s.encoder.Encode(baseURL + "/" + code)
	if err != nil {
		return ShortURLRecord{}, false, fmt.Errorf("%w: %v", ErrQREncode, err)
	}

	record := ShortURLRecord{
		ID:        uuid.New().String(),
		FullURL:   fullURL,
		ShortCode: code,
		OwnerID:   ownerID,
		Clicks:    0,
		QRCode:    qrImage,
	}

	stored, err := s.store.Insert(ctx, record)
	if err != nil {
		return ShortURLRecord{}, false, err
	}

	return stored, false, nil
}

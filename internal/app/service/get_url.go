package service

import "context"

// URLGetter предоставляет чтение записей для клиентского кода.
type URLGetter interface {
	List(ctx context.Context) ([]ShortURLRecord, error)
	Resolve(ctx context.Context, code string) (string, error)
}

type getStore interface {
	FindAll(ctx context.Context) ([]ShortURLRecord, error)
	FindByShortCode(ctx context.Context, code string) (*ShortURLRecord, error)
	IncrementClicks(ctx context.Context, id string) error
}

// GetURLService реализует URLGetter поверх хранилища записей.
type GetURLService struct {
	store getStore
}

func NewGetURLService(store getStore) *GetURLService {
	return &GetURLService{store: store}
}

// List возвращает все сохранённые записи.
func (s *GetURLService) List(ctx context.Context) ([]ShortURLRecord, error) {
	return s.store.FindAll(ctx)
}

// Resolve возвращает оригинальный URL по короткому коду
// и увеличивает счётчик переходов на единицу.
func (s *GetURLService) Resolve(ctx context.Context, code string) (string, error) {
	record, err := s.store.FindByShortCode(ctx, code)
	if err != nil {
		return "", err
	}

	if err := s.store.IncrementClicks(ctx, record.ID); err != nil {
		return "", err
	}

	return record.FullURL, nil
}

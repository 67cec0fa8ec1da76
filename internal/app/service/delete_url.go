package service

import "context"

// URLDeleter удаляет записи, принадлежащие пользователю.
type URLDeleter interface {
	Delete(ctx context.Context, id, ownerID string) error
}

type deleteStore interface {
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*ShortURLRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type DeleteURLService struct {
	store deleteStore
}

func NewURLDeleter(store deleteStore) *DeleteURLService {
	return &DeleteURLService{store: store}
}

// Delete удаляет запись id, если она принадлежит ownerID.
// Чужая или несуществующая запись в обоих случаях даёт ErrNotFound,
// не раскрывая, существует ли она у другого пользователя.
func (s *DeleteURLService) Delete(ctx context.Context, id, ownerID string) error {
	if ownerID == "" {
		return ErrUnauthorized
	}

	record, err := s.store.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return err
	}

	return s.store.DeleteByID(ctx, record.ID)
}

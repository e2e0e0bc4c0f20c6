package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/hr-management-api/internal/repository"
	"github.com/yukikurage/hr-management-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrNoRecords       = errors.New("no records found")
	ErrRecordNotFound  = errors.New("record not found")
	ErrDuplicateRecord = errors.New("record already exists")
)

// RecordService provides the CRUD operations shared by every entity.
type RecordService[T any] struct {
	store  repository.RecordStore[T]
	plural string
}

// NewRecordService creates a RecordService. plural names the entity in
// messages, e.g. "departments".
func NewRecordService[T any](store repository.RecordStore[T], plural string) *RecordService[T] {
	return &RecordService[T]{
		store:  store,
		plural: plural,
	}
}

// Plural returns the entity name used in messages.
func (s *RecordService[T]) Plural() string {
	return s.plural
}

func (s *RecordService[T]) Create(ctx context.Context, record *T) error {
	if err := s.store.Create(ctx, record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateRecord
		}
		return fmt.Errorf("failed to create %s: %w", s.plural, err)
	}
	return nil
}

// List returns ErrNoRecords when the store holds none.
func (s *RecordService[T]) List(ctx context.Context, page utils.PaginationParams) ([]T, error) {
	records, err := s.store.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.plural, err)
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

func (s *RecordService[T]) Count(ctx context.Context) (int64, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", s.plural, err)
	}
	return count, nil
}

func (s *RecordService[T]) CountBy(ctx context.Context, key repository.LookupKey[T], value interface{}) (int64, error) {
	count, err := s.store.CountBy(ctx, key, value)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s by %s: %w", s.plural, key.Column(), err)
	}
	return count, nil
}

func (s *RecordService[T]) Get(ctx context.Context, key repository.LookupKey[T], value interface{}) (*T, error) {
	record, err := s.store.FindBy(ctx, key, value)
	if err != nil {
		return nil, s.lookupError("find", err)
	}
	return record, nil
}

func (s *RecordService[T]) Update(ctx context.Context, key repository.LookupKey[T], value interface{}, changes map[string]interface{}) (*T, error) {
	record, err := s.store.UpdateBy(ctx, key, value, changes)
	if err != nil {
		return nil, s.lookupError("update", err)
	}
	return record, nil
}

func (s *RecordService[T]) Delete(ctx context.Context, key repository.LookupKey[T], value interface{}) error {
	if err := s.store.DeleteBy(ctx, key, value); err != nil {
		return s.lookupError("delete", err)
	}
	return nil
}

func (s *RecordService[T]) lookupError(action string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateRecord
	default:
		return fmt.Errorf("failed to %s %s: %w", action, s.plural, err)
	}
}

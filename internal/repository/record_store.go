package repository

import (
	"context"

	"github.com/yukikurage/hr-management-api/internal/database"
	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LookupKey names a column records of T can be selected by. Keys are
// declared per entity, so a key of one entity cannot be used on another
// entity's store.
type LookupKey[T any] struct {
	column string
}

func (k LookupKey[T]) Column() string {
	return k.column
}

func (k LookupKey[T]) condition(value interface{}) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: k.column}, Value: value}
}

// ByID selects records by primary key.
func ByID[T any]() LookupKey[T] {
	return LookupKey[T]{column: "id"}
}

var (
	DepartmentByName     = LookupKey[models.Department]{column: "name"}
	JobByName            = LookupKey[models.Job]{column: "name"}
	UserByUsername       = LookupKey[models.User]{column: "username"}
	CollaboratorByJob    = LookupKey[models.Collaborator]{column: "job_id"}
	CollaboratorByActive = LookupKey[models.Collaborator]{column: "is_active"}
)

// RecordStore defines the CRUD operations shared by every entity
type RecordStore[T any] interface {
	// Create inserts a record and fills its generated fields
	Create(ctx context.Context, record *T) error

	// List retrieves records ordered by id; unpaginated params return all
	List(ctx context.Context, page utils.PaginationParams) ([]T, error)

	// Count counts all records
	Count(ctx context.Context) (int64, error)

	// CountBy counts records whose key column equals value
	CountBy(ctx context.Context, key LookupKey[T], value interface{}) (int64, error)

	// FindBy finds the first record whose key column equals value
	FindBy(ctx context.Context, key LookupKey[T], value interface{}) (*T, error)

	// UpdateBy applies column changes to the record selected by key and
	// returns the stored result
	UpdateBy(ctx context.Context, key LookupKey[T], value interface{}, changes map[string]interface{}) (*T, error)

	// DeleteBy deletes the records selected by key. It returns
	// gorm.ErrRecordNotFound when nothing matched.
	DeleteBy(ctx context.Context, key LookupKey[T], value interface{}) error
}

// GormRecordStore is a GORM implementation of RecordStore
type GormRecordStore[T any] struct {
	db *gorm.DB
}

// NewRecordStore creates a new RecordStore for T
func NewRecordStore[T any](db *gorm.DB) RecordStore[T] {
	return &GormRecordStore[T]{db: db}
}

func (s *GormRecordStore[T]) Create(ctx context.Context, record *T) error {
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *GormRecordStore[T]) List(ctx context.Context, page utils.PaginationParams) ([]T, error) {
	var records []T
	err := s.db.WithContext(ctx).
		Scopes(database.Paginate(page)).
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GormRecordStore[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(new(T)).Count(&count).Error
	return count, err
}

func (s *GormRecordStore[T]) CountBy(ctx context.Context, key LookupKey[T], value interface{}) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(new(T)).Where(key.condition(value)).Count(&count).Error
	return count, err
}

func (s *GormRecordStore[T]) FindBy(ctx context.Context, key LookupKey[T], value interface{}) (*T, error) {
	record := new(T)
	if err := s.db.WithContext(ctx).Where(key.condition(value)).First(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (s *GormRecordStore[T]) UpdateBy(ctx context.Context, key LookupKey[T], value interface{}, changes map[string]interface{}) (*T, error) {
	record := new(T)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(key.condition(value)).First(record).Error; err != nil {
			return err
		}
		if len(changes) == 0 {
			return nil
		}
		if err := tx.Model(record).Updates(changes).Error; err != nil {
			return err
		}
		// reload by primary key; changes may have rewritten the lookup column
		return tx.First(record).Error
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *GormRecordStore[T]) DeleteBy(ctx context.Context, key LookupKey[T], value interface{}) error {
	result := s.db.WithContext(ctx).Where(key.condition(value)).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

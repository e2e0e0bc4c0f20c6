package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/hr-management-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrCreateDepartment is returned when creating the department fails inside the bootstrap transaction.
	ErrCreateDepartment = errors.New("user repository: create department failed")
	// ErrCreateUser is returned when creating the user fails inside the bootstrap transaction.
	ErrCreateUser = errors.New("user repository: create user failed")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateWithDepartment creates a department and its first user atomically.
func (r *GormUserRepository) CreateWithDepartment(ctx context.Context, department *models.Department, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(department).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateDepartment, err)
		}

		user.DepartmentID = department.ID

		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateUser, err)
		}

		return nil
	})
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/repository"
	"github.com/yukikurage/hr-management-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrAlreadyBootstrapped  = errors.New("first user already exists")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
	ErrFailedToCreateDept   = errors.New("failed to create department")
)

// BootstrapService seeds an empty installation.
type BootstrapService struct {
	userRepo repository.UserRepository
}

// NewBootstrapService creates a new BootstrapService.
func NewBootstrapService(userRepo repository.UserRepository) *BootstrapService {
	return &BootstrapService{
		userRepo: userRepo,
	}
}

// FirstRecordsInput describes the first department and its C-LEVEL user.
type FirstRecordsInput struct {
	DepartmentName        string
	DepartmentDescription string
	Username              string
	Password              string
	Email                 string
}

// FirstRecords creates the first department and a C-LEVEL user in it.
func (s *BootstrapService) FirstRecords(ctx context.Context, input FirstRecordsInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if strings.TrimSpace(input.DepartmentName) == "" {
		return nil, fmt.Errorf("department name is required")
	}

	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, ErrAlreadyBootstrapped
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooShort) {
			return nil, err
		}
		return nil, ErrFailedToHashPassword
	}

	department := &models.Department{
		Name:        input.DepartmentName,
		Description: input.DepartmentDescription,
	}
	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		Email:        input.Email,
		Role:         models.RoleCLevel,
	}

	if err := s.userRepo.CreateWithDepartment(ctx, department, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrCreateDepartment):
			return nil, ErrFailedToCreateDept
		case errors.Is(err, repository.ErrCreateUser):
			return nil, ErrFailedToCreateUser
		default:
			return nil, fmt.Errorf("failed to create first records: %w", err)
		}
	}

	return user, nil
}

package repository

import (
	"context"

	"github.com/yukikurage/hr-management-api/internal/models"
	"gorm.io/gorm"
)

// GormMembershipRepository is a GORM implementation of MembershipRepository
type GormMembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new MembershipRepository
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &GormMembershipRepository{db: db}
}

// Add adds a collaborator to a project. A duplicate pair surfaces as
// gorm.ErrDuplicatedKey when the connection translates errors.
func (r *GormMembershipRepository) Add(ctx context.Context, member *models.ProjectCollaborator) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// Remove removes a collaborator from a project
func (r *GormMembershipRepository) Remove(ctx context.Context, projectID, collaboratorID uint64) error {
	result := r.db.WithContext(ctx).
		Where("project_id = ? AND collaborator_id = ?", projectID, collaboratorID).
		Delete(&models.ProjectCollaborator{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Exists reports whether the collaborator belongs to the project
func (r *GormMembershipRepository) Exists(ctx context.Context, projectID, collaboratorID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ProjectCollaborator{}).
		Where("project_id = ? AND collaborator_id = ?", projectID, collaboratorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

package repository

import (
	"context"

	"github.com/yukikurage/hr-management-api/internal/models"
	"gorm.io/gorm"
)

// GormCollaboratorRepository is a GORM implementation of CollaboratorRepository
type GormCollaboratorRepository struct {
	db *gorm.DB
}

// NewCollaboratorRepository creates a new CollaboratorRepository
func NewCollaboratorRepository(db *gorm.DB) CollaboratorRepository {
	return &GormCollaboratorRepository{db: db}
}

// ListByJobWithAssignments lists the collaborators of a job with their assignments
func (r *GormCollaboratorRepository) ListByJobWithAssignments(ctx context.Context, jobID uint64) ([]models.Collaborator, error) {
	var collaborators []models.Collaborator
	err := r.db.WithContext(ctx).
		Preload("Assignments", orderByID).
		Where("job_id = ?", jobID).
		Order("id").
		Find(&collaborators).Error
	if err != nil {
		return nil, err
	}
	return collaborators, nil
}

// ListByProject lists the members of a project
func (r *GormCollaboratorRepository) ListByProject(ctx context.Context, projectID uint64) ([]models.Collaborator, error) {
	var collaborators []models.Collaborator
	err := r.db.WithContext(ctx).
		Joins("JOIN project_collaborator ON project_collaborator.collaborator_id = collaborators.id").
		Where("project_collaborator.project_id = ?", projectID).
		Order("collaborators.id").
		Find(&collaborators).Error
	if err != nil {
		return nil, err
	}
	return collaborators, nil
}

package repository

import (
	"context"

	"github.com/yukikurage/hr-management-api/internal/models"
	"gorm.io/gorm"
)

// GormAssignmentRepository is a GORM implementation of AssignmentRepository
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// ListOverlapping lists assignments intersecting [start, final]
func (r *GormAssignmentRepository) ListOverlapping(ctx context.Context, start, final models.Date) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Collaborator.Job.Collaborators", orderByID).
		Preload("Collaborator.Job.Collaborators.Assignments", orderByID).
		Where("start_date <= ? AND final_date >= ?", final, start).
		Order("project_id, id").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// ListByCollaborator lists every assignment of a collaborator
func (r *GormAssignmentRepository) ListByCollaborator(ctx context.Context, collaboratorID uint64) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.WithContext(ctx).
		Where("collaborator_id = ?", collaboratorID).
		Order("start_date, id").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// ListByProject lists every assignment of a project
func (r *GormAssignmentRepository) ListByProject(ctx context.Context, projectID uint64) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("start_date, id").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

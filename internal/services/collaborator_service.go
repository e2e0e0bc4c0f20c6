package services

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/repository"
)

// CollaboratorService provides collaborator and project roster queries.
type CollaboratorService struct {
	collaborators repository.CollaboratorRepository
	assignments   repository.AssignmentRepository
}

// NewCollaboratorService creates a new CollaboratorService.
func NewCollaboratorService(collaborators repository.CollaboratorRepository, assignments repository.AssignmentRepository) *CollaboratorService {
	return &CollaboratorService{
		collaborators: collaborators,
		assignments:   assignments,
	}
}

// FilterAvailable returns the collaborators of a job with no assignment
// covering date. Collaborators without assignments are always available.
func (s *CollaboratorService) FilterAvailable(ctx context.Context, date models.Date, jobID uint64) ([]models.Collaborator, error) {
	collaborators, err := s.collaborators.ListByJobWithAssignments(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}

	return lo.Filter(collaborators, func(c models.Collaborator, _ int) bool {
		return !lo.ContainsBy(c.Assignments, func(a models.Assignment) bool {
			return a.Covers(date)
		})
	}), nil
}

// AssignmentsOf lists a collaborator's assignments, ErrNoRecords when it
// has none.
func (s *CollaboratorService) AssignmentsOf(ctx context.Context, collaboratorID uint64) ([]models.Assignment, error) {
	assignments, err := s.assignments.ListByCollaborator(ctx, collaboratorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	if len(assignments) == 0 {
		return nil, ErrNoRecords
	}
	return assignments, nil
}

// MembersOf lists the collaborators of a project, ErrNoRecords when it has
// none.
func (s *CollaboratorService) MembersOf(ctx context.Context, projectID uint64) ([]models.Collaborator, error) {
	collaborators, err := s.collaborators.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project collaborators: %w", err)
	}
	if len(collaborators) == 0 {
		return nil, ErrNoRecords
	}
	return collaborators, nil
}

// ProjectAssignments lists the assignments of a project, ErrNoRecords when
// it has none.
func (s *CollaboratorService) ProjectAssignments(ctx context.Context, projectID uint64) ([]models.Assignment, error) {
	assignments, err := s.assignments.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project assignments: %w", err)
	}
	if len(assignments) == 0 {
		return nil, ErrNoRecords
	}
	return assignments, nil
}

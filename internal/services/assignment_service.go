package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/repository"
)

var ErrCollaboratorNotInProject = errors.New("collaborator is not a member of the assignment project")

// AssignmentService guards assignment creation.
type AssignmentService struct {
	assignments repository.RecordStore[models.Assignment]
	memberships repository.MembershipRepository
}

// NewAssignmentService creates a new AssignmentService.
func NewAssignmentService(assignments repository.RecordStore[models.Assignment], memberships repository.MembershipRepository) *AssignmentService {
	return &AssignmentService{
		assignments: assignments,
		memberships: memberships,
	}
}

// CreateAssignment persists an assignment whose collaborator is a member of
// its project. Overlapping assignments are allowed.
//
// The membership check and the insert are separate statements; a membership
// removed in between is not detected.
func (s *AssignmentService) CreateAssignment(ctx context.Context, assignment *models.Assignment) (*models.Assignment, error) {
	member, err := s.memberships.Exists(ctx, assignment.ProjectID, assignment.CollaboratorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check project membership: %w", err)
	}
	if !member {
		return nil, ErrCollaboratorNotInProject
	}

	if err := s.assignments.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}
	return assignment, nil
}

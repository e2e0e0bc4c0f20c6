package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/hr-management-api/internal/constants"
	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound       = errors.New("project not found")
	ErrCollaboratorNotFound  = errors.New("collaborator not found")
	ErrAlreadyProjectMember  = errors.New("collaborator is already a member of this project")
	ErrProjectMemberNotFound = errors.New("collaborator is not a member of this project")
)

// MembershipResult describes a completed membership change. When
// AnnouncementRecorded is false the change stands but AnnouncementErr tells
// why it was not announced.
type MembershipResult struct {
	Membership           models.ProjectCollaborator
	AnnouncementRecorded bool
	AnnouncementErr      error
}

// MembershipService adds collaborators to projects and removes them,
// announcing every change.
type MembershipService struct {
	memberships   repository.MembershipRepository
	projects      repository.RecordStore[models.Project]
	collaborators repository.RecordStore[models.Collaborator]
	announcements *AnnouncementService
}

// NewMembershipService creates a new MembershipService.
func NewMembershipService(
	memberships repository.MembershipRepository,
	projects repository.RecordStore[models.Project],
	collaborators repository.RecordStore[models.Collaborator],
	announcements *AnnouncementService,
) *MembershipService {
	return &MembershipService{
		memberships:   memberships,
		projects:      projects,
		collaborators: collaborators,
		announcements: announcements,
	}
}

// AddCollaborator makes the collaborator a member of the project.
func (s *MembershipService) AddCollaborator(ctx context.Context, actor *models.User, projectID, collaboratorID uint64) (*MembershipResult, error) {
	project, collaborator, err := s.resolve(ctx, projectID, collaboratorID)
	if err != nil {
		return nil, err
	}

	member := models.ProjectCollaborator{ProjectID: project.ID, CollaboratorID: collaborator.ID}
	if err := s.memberships.Add(ctx, &member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyProjectMember
		}
		return nil, fmt.Errorf("failed to add collaborator to project: %w", err)
	}

	return s.announce(ctx, actor, project, collaborator, member, constants.MembershipActionAdded), nil
}

// RemoveCollaborator ends the collaborator's membership of the project.
// Existing assignments are kept.
func (s *MembershipService) RemoveCollaborator(ctx context.Context, actor *models.User, projectID, collaboratorID uint64) (*MembershipResult, error) {
	project, collaborator, err := s.resolve(ctx, projectID, collaboratorID)
	if err != nil {
		return nil, err
	}

	if err := s.memberships.Remove(ctx, project.ID, collaborator.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectMemberNotFound
		}
		return nil, fmt.Errorf("failed to remove collaborator from project: %w", err)
	}

	member := models.ProjectCollaborator{ProjectID: project.ID, CollaboratorID: collaborator.ID}
	return s.announce(ctx, actor, project, collaborator, member, constants.MembershipActionRemoved), nil
}

func (s *MembershipService) resolve(ctx context.Context, projectID, collaboratorID uint64) (*models.Project, *models.Collaborator, error) {
	project, err := s.projects.FindBy(ctx, repository.ByID[models.Project](), projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProjectNotFound
		}
		return nil, nil, fmt.Errorf("failed to find project: %w", err)
	}

	collaborator, err := s.collaborators.FindBy(ctx, repository.ByID[models.Collaborator](), collaboratorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCollaboratorNotFound
		}
		return nil, nil, fmt.Errorf("failed to find collaborator: %w", err)
	}

	return project, collaborator, nil
}

func (s *MembershipService) announce(ctx context.Context, actor *models.User, project *models.Project, collaborator *models.Collaborator, member models.ProjectCollaborator, action string) *MembershipResult {
	result := &MembershipResult{Membership: member, AnnouncementRecorded: true}
	if _, err := s.announcements.RecordMembershipChange(ctx, actor, project, collaborator, action); err != nil {
		result.AnnouncementRecorded = false
		result.AnnouncementErr = err
	}
	return result
}

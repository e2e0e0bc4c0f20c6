package repository

import (
	"context"
	"time"

	"github.com/yukikurage/hr-management-api/internal/models"
)

// AssignmentRepository defines the assignment queries beyond plain CRUD
type AssignmentRepository interface {
	// ListOverlapping lists assignments intersecting [start, final], both ends
	// inclusive, with their project and the full roster of each
	// collaborator's job (every roster member with its assignments).
	ListOverlapping(ctx context.Context, start, final models.Date) ([]models.Assignment, error)

	// ListByCollaborator lists every assignment of a collaborator
	ListByCollaborator(ctx context.Context, collaboratorID uint64) ([]models.Assignment, error)

	// ListByProject lists every assignment of a project
	ListByProject(ctx context.Context, projectID uint64) ([]models.Assignment, error)
}

// CollaboratorRepository defines the collaborator queries beyond plain CRUD
type CollaboratorRepository interface {
	// ListByJobWithAssignments lists the collaborators holding a job, each
	// with all of its assignments
	ListByJobWithAssignments(ctx context.Context, jobID uint64) ([]models.Collaborator, error)

	// ListByProject lists the members of a project
	ListByProject(ctx context.Context, projectID uint64) ([]models.Collaborator, error)
}

// MembershipRepository defines data access for project membership
type MembershipRepository interface {
	// Add adds a collaborator to a project
	Add(ctx context.Context, member *models.ProjectCollaborator) error

	// Remove removes a collaborator from a project. It returns
	// gorm.ErrRecordNotFound when the pair was not a member.
	Remove(ctx context.Context, projectID, collaboratorID uint64) error

	// Exists reports whether the collaborator belongs to the project
	Exists(ctx context.Context, projectID, collaboratorID uint64) (bool, error)
}

// AnnouncementRepository defines data access for announcements
type AnnouncementRepository interface {
	// Create records an announcement; the store assigns its date
	Create(ctx context.Context, announcement *models.Announcement) error

	// ListBetween lists announcements dated in [from, to)
	ListBetween(ctx context.Context, from, to time.Time) ([]models.Announcement, error)
}

// UserRepository defines the user queries beyond plain CRUD
type UserRepository interface {
	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// CreateWithDepartment creates a department and a user belonging to it
	// within a single transaction.
	CreateWithDepartment(ctx context.Context, department *models.Department, user *models.User) error
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yukikurage/hr-management-api/internal/constants"
	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/repository"
)

// AnnouncementService records and lists announcements.
type AnnouncementService struct {
	announcements repository.AnnouncementRepository
	now           func() time.Time
}

// NewAnnouncementService creates a new AnnouncementService.
func NewAnnouncementService(announcements repository.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{
		announcements: announcements,
		now:           time.Now,
	}
}

// RecordMembershipChange records that actor added or removed collaborator
// on project. action is one of the constants.MembershipAction values.
func (s *AnnouncementService) RecordMembershipChange(ctx context.Context, actor *models.User, project *models.Project, collaborator *models.Collaborator, action string) (*models.Announcement, error) {
	description := fmt.Sprintf("The user:%s has %s collaborator:%s to the project:%s",
		actor.Username, action, collaborator.Name, project.Name)
	announcement := &models.Announcement{
		Name:        constants.AnnouncementMembershipChanged,
		Description: description,
		UserID:      actor.ID,
	}

	if err := s.announcements.Create(ctx, announcement); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	return announcement, nil
}

// Today lists the announcements made on the server's current day.
func (s *AnnouncementService) Today(ctx context.Context) ([]models.Announcement, error) {
	today := s.now()
	return s.Between(ctx, models.DateOf(today), models.DateOf(today))
}

// Between lists the announcements made from start to final, both days
// included. It returns ErrNoRecords when there are none.
func (s *AnnouncementService) Between(ctx context.Context, start, final models.Date) ([]models.Announcement, error) {
	from := startOfDay(start)
	to := startOfDay(final).AddDate(0, 0, 1)

	announcements, err := s.announcements.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	if len(announcements) == 0 {
		return nil, ErrNoRecords
	}
	return announcements, nil
}

// startOfDay is midnight of date in the server's location, where
// announcement timestamps are taken.
func startOfDay(date models.Date) time.Time {
	t := date.Time()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

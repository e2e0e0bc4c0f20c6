package repository

import (
	"context"
	"time"

	"github.com/yukikurage/hr-management-api/internal/models"
	"gorm.io/gorm"
)

// GormAnnouncementRepository is a GORM implementation of AnnouncementRepository
type GormAnnouncementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &GormAnnouncementRepository{db: db}
}

// Create records an announcement
func (r *GormAnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

// ListBetween lists announcements dated in [from, to)
func (r *GormAnnouncementRepository) ListBetween(ctx context.Context, from, to time.Time) ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("date, id").
		Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

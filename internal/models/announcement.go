package models

import "time"

// Announcement is an audit entry. Date is assigned on insert and never
// updated.
type Announcement struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(64);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"<-:create;autoCreateTime;not null;index" json:"date"`
	UserID      uint64    `gorm:"not null" json:"user_id"`
}

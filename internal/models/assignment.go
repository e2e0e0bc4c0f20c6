package models

// Assignment is a dated work interval of one collaborator on one project.
// StartDate <= FinalDate is expected but not enforced by the store.
type Assignment struct {
	ID             uint64 `gorm:"primarykey" json:"id"`
	Name           string `gorm:"type:varchar(64)" json:"name"`
	StartDate      Date   `gorm:"not null" json:"start_date"`
	FinalDate      Date   `gorm:"not null" json:"final_date"`
	CollaboratorID uint64 `gorm:"not null" json:"collaborator_id"`
	ProjectID      uint64 `gorm:"not null" json:"project_id"`

	// Relations
	Collaborator Collaborator `gorm:"foreignKey:CollaboratorID" json:"-"`
	Project      Project      `gorm:"foreignKey:ProjectID" json:"-"`
}

// Covers reports whether the assignment interval contains date.
func (a Assignment) Covers(date Date) bool {
	return date.Covers(a.StartDate, a.FinalDate)
}

// Overlaps reports whether the assignment intersects [start, final].
func (a Assignment) Overlaps(start, final Date) bool {
	return !a.StartDate.After(final) && !a.FinalDate.Before(start)
}

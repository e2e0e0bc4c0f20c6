package models

type Job struct {
	ID           uint64 `gorm:"primarykey" json:"id"`
	Name         string `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
	DepartmentID uint64 `gorm:"not null" json:"department_id"`

	// Relations
	Collaborators []Collaborator `gorm:"foreignKey:JobID;constraint:OnDelete:RESTRICT" json:"-"`
}

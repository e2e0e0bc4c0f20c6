package models

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

type Collaborator struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	Name     string `gorm:"type:varchar(64);not null" json:"name"`
	LastName string `gorm:"type:varchar(64);not null" json:"last_name"`
	Gender   Gender `gorm:"type:varchar(10)" json:"gender"`
	Age      int    `json:"age"`
	IsActive bool   `gorm:"not null" json:"is_active"`
	JobID    uint64 `gorm:"not null" json:"job_id"`

	// Relations
	Job         Job          `gorm:"foreignKey:JobID" json:"-"`
	Assignments []Assignment `gorm:"foreignKey:CollaboratorID;constraint:OnDelete:CASCADE" json:"-"`
}

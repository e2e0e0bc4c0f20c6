package models

type Project struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	Name        string `gorm:"type:varchar(64);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Customer    string `gorm:"type:varchar(64)" json:"customer"`
	StartDate   Date   `gorm:"not null" json:"start_date"`
	FinalDate   Date   `gorm:"not null" json:"final_date"`

	// Relations
	Assignments []Assignment          `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	Members     []ProjectCollaborator `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}

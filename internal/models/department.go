package models

type Department struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	Name        string `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Relations
	Jobs  []Job  `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE" json:"-"`
	Users []User `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE" json:"-"`
}

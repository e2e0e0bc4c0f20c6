package models

type Role string

const (
	RoleCLevel Role = "C-LEVEL"
	RoleLeader Role = "LEADER"
)

type User struct {
	ID           uint64 `gorm:"primarykey" json:"id"`
	Username     string `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"column:password;type:varchar(128);not null" json:"-"`
	Email        string `gorm:"type:varchar(256)" json:"email"`
	Role         Role   `gorm:"type:varchar(20);not null" json:"role"`
	DepartmentID uint64 `gorm:"not null" json:"department_id"`

	// Relations
	Announcements []Announcement `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName avoids the reserved "user" table name in PostgreSQL.
func (User) TableName() string {
	return "user_db"
}

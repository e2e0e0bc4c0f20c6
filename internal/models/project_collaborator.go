package models

// ProjectCollaborator links a collaborator to a project. A pair exists at most
// once.
type ProjectCollaborator struct {
	ID             uint64 `gorm:"primarykey" json:"id"`
	ProjectID      uint64 `gorm:"not null;uniqueIndex:idx_project_collaborator" json:"project_id"`
	CollaboratorID uint64 `gorm:"not null;uniqueIndex:idx_project_collaborator" json:"collaborator_id"`

	// Relations
	Project      Project      `gorm:"foreignKey:ProjectID" json:"-"`
	Collaborator Collaborator `gorm:"foreignKey:CollaboratorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ProjectCollaborator) TableName() string {
	return "project_collaborator"
}

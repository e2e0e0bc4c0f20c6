package dto

import "github.com/yukikurage/hr-management-api/internal/models"

// MembershipDTO is the result of a membership change. Message is set when
// the change succeeded but its announcement could not be recorded.
type MembershipDTO struct {
	ID             uint64 `json:"id,omitempty"`
	ProjectID      uint64 `json:"project_id"`
	CollaboratorID uint64 `json:"collaborator_id"`
	Message        string `json:"message,omitempty"`
}

func ToMembershipDTO(member models.ProjectCollaborator) MembershipDTO {
	return MembershipDTO{
		ID:             member.ID,
		ProjectID:      member.ProjectID,
		CollaboratorID: member.CollaboratorID,
	}
}

package dto

import "github.com/yukikurage/hr-management-api/internal/models"

// ProjectGroupDTO is one project of the assignment calendar
type ProjectGroupDTO struct {
	ProjectID      uint64        `json:"project_id"`
	ProjectName    string        `json:"project_name"`
	JobsImplicated []JobGroupDTO `json:"jobs_implicated"`
}

// JobGroupDTO groups the collaborators of one job working on a project.
// StartDate and EndDate span the assignments that fell inside the window.
type JobGroupDTO struct {
	StartDate     models.Date            `json:"start_date"`
	EndDate       models.Date            `json:"end_date"`
	JobID         uint64                 `json:"job_id"`
	JobName       string                 `json:"job_name"`
	Collaborators []CollaboratorGroupDTO `json:"collaborators"`
}

// CollaboratorGroupDTO lists a collaborator's assignments on the enclosing project
type CollaboratorGroupDTO struct {
	ID          uint64              `json:"id"`
	Name        string              `json:"name"`
	LastName    string              `json:"lastname"`
	Assignments []models.Assignment `json:"assignments"`
}

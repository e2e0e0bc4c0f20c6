package services

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/yukikurage/hr-management-api/internal/dto"
	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/repository"
)

// CalendarService builds the assignment calendar.
type CalendarService struct {
	assignments repository.AssignmentRepository
}

// NewCalendarService creates a new CalendarService.
func NewCalendarService(assignments repository.AssignmentRepository) *CalendarService {
	return &CalendarService{
		assignments: assignments,
	}
}

// BuildCalendar groups the assignments intersecting [start, final] by
// project and then by the job of their collaborator. Each job group spans
// the earliest start and latest end of its assignments in the window and
// lists the job's whole roster, each member with every assignment it holds
// on that project.
func (s *CalendarService) BuildCalendar(ctx context.Context, start, final models.Date) ([]dto.ProjectGroupDTO, error) {
	assignments, err := s.assignments.ListOverlapping(ctx, start, final)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return groupByProject(assignments), nil
}

func groupByProject(assignments []models.Assignment) []dto.ProjectGroupDTO {
	projectIDs := lo.Uniq(lo.Map(assignments, func(a models.Assignment, _ int) uint64 {
		return a.ProjectID
	}))
	byProject := lo.GroupBy(assignments, func(a models.Assignment) uint64 {
		return a.ProjectID
	})

	calendar := make([]dto.ProjectGroupDTO, 0, len(projectIDs))
	for _, projectID := range projectIDs {
		group := byProject[projectID]
		calendar = append(calendar, dto.ProjectGroupDTO{
			ProjectID:      projectID,
			ProjectName:    group[0].Project.Name,
			JobsImplicated: groupByJob(projectID, group),
		})
	}
	return calendar
}

func groupByJob(projectID uint64, assignments []models.Assignment) []dto.JobGroupDTO {
	jobIDs := lo.Uniq(lo.Map(assignments, func(a models.Assignment, _ int) uint64 {
		return a.Collaborator.JobID
	}))
	byJob := lo.GroupBy(assignments, func(a models.Assignment) uint64 {
		return a.Collaborator.JobID
	})

	jobs := make([]dto.JobGroupDTO, 0, len(jobIDs))
	for _, jobID := range jobIDs {
		group := byJob[jobID]
		job := group[0].Collaborator.Job

		first := lo.MinBy(group, func(a, b models.Assignment) bool {
			return a.StartDate.Before(b.StartDate)
		})
		last := lo.MaxBy(group, func(a, b models.Assignment) bool {
			return a.FinalDate.After(b.FinalDate)
		})

		jobs = append(jobs, dto.JobGroupDTO{
			StartDate:     first.StartDate,
			EndDate:       last.FinalDate,
			JobID:         jobID,
			JobName:       job.Name,
			Collaborators: rosterFor(projectID, job.Collaborators),
		})
	}
	return jobs
}

func rosterFor(projectID uint64, collaborators []models.Collaborator) []dto.CollaboratorGroupDTO {
	return lo.Map(collaborators, func(c models.Collaborator, _ int) dto.CollaboratorGroupDTO {
		return dto.CollaboratorGroupDTO{
			ID:       c.ID,
			Name:     c.Name,
			LastName: c.LastName,
			Assignments: lo.Filter(c.Assignments, func(a models.Assignment, _ int) bool {
				return a.ProjectID == projectID
			}),
		}
	})
}

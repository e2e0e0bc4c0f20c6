package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/hr-management-api/internal/errors"
	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/repository"
	"github.com/yukikurage/hr-management-api/internal/services"
	"go.uber.org/zap"
)

// CollaboratorHandler serves collaborator queries beyond plain CRUD.
type CollaboratorHandler struct {
	records             *services.RecordService[models.Collaborator]
	collaboratorService *services.CollaboratorService
	logger              *zap.Logger
}

// NewCollaboratorHandler creates a new CollaboratorHandler.
func NewCollaboratorHandler(records *services.RecordService[models.Collaborator], collaboratorService *services.CollaboratorService, logger *zap.Logger) *CollaboratorHandler {
	return &CollaboratorHandler{
		records:             records,
		collaboratorService: collaboratorService,
		logger:              logger,
	}
}

// CountActive counts the active collaborators.
func (h *CollaboratorHandler) CountActive(c *gin.Context) {
	count, err := h.records.CountBy(c.Request.Context(), repository.CollaboratorByActive, true)
	if err != nil {
		respondInternalError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

// CountByJob counts the collaborators holding a job.
func (h *CollaboratorHandler) CountByJob(c *gin.Context) {
	jobID, ok := parseIDParam(c, "job_id")
	if !ok {
		return
	}

	count, err := h.records.CountBy(c.Request.Context(), repository.CollaboratorByJob, jobID)
	if err != nil {
		respondInternalError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

// Available lists the collaborators of a job free on a date.
func (h *CollaboratorHandler) Available(c *gin.Context) {
	jobID, ok := parseIDParam(c, "job_id")
	if !ok {
		return
	}
	date, ok := parseDateParam(c, "date")
	if !ok {
		return
	}

	collaborators, err := h.collaboratorService.FilterAvailable(c.Request.Context(), date, jobID)
	if err != nil {
		respondInternalError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, collaborators)
}

// Assignments lists every assignment of a collaborator.
func (h *CollaboratorHandler) Assignments(c *gin.Context) {
	collaboratorID, ok := parseIDParam(c, "collaborator_id")
	if !ok {
		return
	}

	assignments, err := h.collaboratorService.AssignmentsOf(c.Request.Context(), collaboratorID)
	if err != nil {
		if errors.Is(err, services.ErrNoRecords) {
			apierrors.NotFound(c, "No assignments found")
			return
		}
		respondInternalError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

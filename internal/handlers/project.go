package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hr-management-api/internal/dto"
	apierrors "github.com/yukikurage/hr-management-api/internal/errors"
	"github.com/yukikurage/hr-management-api/internal/middleware"
	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/services"
	"go.uber.org/zap"
)

const (
	msgAddedWithoutAnnouncement   = "The collaborator was added to the project but the corresponding announcement could not be created."
	msgRemovedWithoutAnnouncement = "The collaborator was removed from the project but the corresponding announcement could not be created."
)

// ProjectHandler serves project rosters and membership changes.
type ProjectHandler struct {
	collaboratorService *services.CollaboratorService
	membershipService   *services.MembershipService
	logger              *zap.Logger
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(collaboratorService *services.CollaboratorService, membershipService *services.MembershipService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		collaboratorService: collaboratorService,
		membershipService:   membershipService,
		logger:              logger,
	}
}

// Collaborators lists the members of a project.
func (h *ProjectHandler) Collaborators(c *gin.Context) {
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}

	collaborators, err := h.collaboratorService.MembersOf(c.Request.Context(), projectID)
	if err != nil {
		h.respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, collaborators)
}

// Assignments lists the assignments of a project.
func (h *ProjectHandler) Assignments(c *gin.Context) {
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}

	assignments, err := h.collaboratorService.ProjectAssignments(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, services.ErrNoRecords) {
			apierrors.NotFound(c, "No assignments found")
			return
		}
		h.respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// AddCollaborator makes a collaborator a member of a project.
func (h *ProjectHandler) AddCollaborator(c *gin.Context) {
	h.changeMembership(c, h.membershipService.AddCollaborator, http.StatusCreated, msgAddedWithoutAnnouncement)
}

// RemoveCollaborator ends a collaborator's membership of a project.
func (h *ProjectHandler) RemoveCollaborator(c *gin.Context) {
	h.changeMembership(c, h.membershipService.RemoveCollaborator, http.StatusOK, msgRemovedWithoutAnnouncement)
}

type membershipChange = func(ctx context.Context, actor *models.User, projectID, collaboratorID uint64) (*services.MembershipResult, error)

func (h *ProjectHandler) changeMembership(c *gin.Context, change membershipChange, status int, degraded string) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}
	collaboratorID, ok := parseIDParam(c, "collaborator_id")
	if !ok {
		return
	}

	result, err := change(c.Request.Context(), actor, projectID, collaboratorID)
	if err != nil {
		h.respondProjectError(c, err)
		return
	}

	response := dto.ToMembershipDTO(result.Membership)
	if !result.AnnouncementRecorded {
		h.logger.Warn("membership changed without announcement",
			zap.Uint64("project_id", projectID),
			zap.Uint64("collaborator_id", collaboratorID),
			zap.Error(result.AnnouncementErr),
		)
		response.Message = degraded
	}
	c.JSON(status, response)
}

func (h *ProjectHandler) respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoRecords):
		apierrors.NotFound(c, "No collaborators found")
	case errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrCollaboratorNotFound),
		errors.Is(err, services.ErrProjectMemberNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAlreadyProjectMember):
		apierrors.Conflict(c, err.Error())
	default:
		respondInternalError(c, h.logger, err)
	}
}

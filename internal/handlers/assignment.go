package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hr-management-api/internal/dto"
	apierrors "github.com/yukikurage/hr-management-api/internal/errors"
	"github.com/yukikurage/hr-management-api/internal/services"
	"go.uber.org/zap"
)

const msgCollaboratorNotInProject = "the collaborator is not assigned to the project"

// AssignmentHandler serves assignment creation.
type AssignmentHandler struct {
	assignmentService *services.AssignmentService
	logger            *zap.Logger
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(assignmentService *services.AssignmentService, logger *zap.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
		logger:            logger,
	}
}

// CreateAssignment creates an assignment for a collaborator on one of its
// projects.
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req dto.AssignmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	assignment, err := req.Model()
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	created, err := h.assignmentService.CreateAssignment(c.Request.Context(), assignment)
	if err != nil {
		respondAssignmentError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func respondAssignmentError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrCollaboratorNotInProject):
		apierrors.InternalError(c, msgCollaboratorNotInProject)
	default:
		respondInternalError(c, logger, err)
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/hr-management-api/internal/errors"
	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/services"
	"go.uber.org/zap"
)

// AnnouncementHandler serves the announcement log.
type AnnouncementHandler struct {
	announcementService *services.AnnouncementService
	logger              *zap.Logger
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(announcementService *services.AnnouncementService, logger *zap.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
		logger:              logger,
	}
}

// Today lists the announcements made today.
func (h *AnnouncementHandler) Today(c *gin.Context) {
	announcements, err := h.announcementService.Today(c.Request.Context())
	h.respond(c, announcements, err)
}

// Between lists the announcements made between two dates, both included.
func (h *AnnouncementHandler) Between(c *gin.Context) {
	start, ok := parseDateParam(c, "start_date")
	if !ok {
		return
	}
	final, ok := parseDateParam(c, "final_date")
	if !ok {
		return
	}

	announcements, err := h.announcementService.Between(c.Request.Context(), start, final)
	h.respond(c, announcements, err)
}

func (h *AnnouncementHandler) respond(c *gin.Context, announcements []models.Announcement, err error) {
	if err != nil {
		if errors.Is(err, services.ErrNoRecords) {
			apierrors.NotFound(c, "No announcements found")
			return
		}
		respondInternalError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, announcements)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/hr-management-api/internal/errors"
	"github.com/yukikurage/hr-management-api/internal/services"
	"go.uber.org/zap"
)

// CalendarHandler serves the assignment calendar.
type CalendarHandler struct {
	calendarService *services.CalendarService
	logger          *zap.Logger
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(calendarService *services.CalendarService, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
		logger:          logger,
	}
}

// GetCalendar returns the assignments between the two path dates grouped by
// project, job and collaborator. A final date before the start date matches
// nothing.
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	start, ok := parseDateParam(c, "start_filter")
	if !ok {
		return
	}
	final, ok := parseDateParam(c, "final_filter")
	if !ok {
		return
	}
	calendar, err := h.calendarService.BuildCalendar(c.Request.Context(), start, final)
	if err != nil {
		respondInternalError(c, h.logger, err)
		return
	}
	if len(calendar) == 0 {
		apierrors.NotFound(c, "No assignments found between the given dates")
		return
	}

	c.JSON(http.StatusOK, calendar)
}

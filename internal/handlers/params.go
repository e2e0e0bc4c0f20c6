package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/hr-management-api/internal/errors"
	"github.com/yukikurage/hr-management-api/internal/models"
)

// parseIDParam reads a numeric path parameter, answering 400 when it is not one.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		apierrors.BadRequest(c, fmt.Sprintf("Invalid %s", name))
		return 0, false
	}
	return id, true
}

// parseDateParam reads a YYYY-MM-DD path parameter, answering 400 when it is not one.
func parseDateParam(c *gin.Context, name string) (models.Date, bool) {
	date, err := models.ParseDate(c.Param(name))
	if err != nil {
		apierrors.BadRequest(c, fmt.Sprintf("Invalid %s: expected a date formatted as YYYY-MM-DD", name))
		return models.Date{}, false
	}
	return date, true
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/hr-management-api/internal/errors"
	"github.com/yukikurage/hr-management-api/internal/repository"
	"github.com/yukikurage/hr-management-api/internal/services"
	"github.com/yukikurage/hr-management-api/internal/utils"
	"go.uber.org/zap"
)

// RecordHandler serves the CRUD routes of one entity. Records are addressed
// by a single path parameter bound to a lookup key.
type RecordHandler[T any] struct {
	service *services.RecordService[T]
	logger  *zap.Logger
	name    string
	param   string
	key     repository.LookupKey[T]
	numeric bool
}

// RecordHandlerConfig names the entity and how its records are addressed.
type RecordHandlerConfig[T any] struct {
	// Name is the singular entity name used in messages
	Name  string
	Param string
	Key   repository.LookupKey[T]
	// Numeric parameters are parsed as ids
	Numeric bool
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler[T any](service *services.RecordService[T], logger *zap.Logger, cfg RecordHandlerConfig[T]) *RecordHandler[T] {
	return &RecordHandler[T]{
		service: service,
		logger:  logger,
		name:    cfg.Name,
		param:   cfg.Param,
		key:     cfg.Key,
		numeric: cfg.Numeric,
	}
}

func (h *RecordHandler[T]) lookupValue(c *gin.Context) (interface{}, bool) {
	if h.numeric {
		return parseIDParam(c, h.param)
	}
	return c.Param(h.param), true
}

// List returns every record, or one page of them with page/limit.
func (h *RecordHandler[T]) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context(), utils.GetPaginationParams(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// Count returns the number of records.
func (h *RecordHandler[T]) Count(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

// Get returns one record.
func (h *RecordHandler[T]) Get(c *gin.Context) {
	value, ok := h.lookupValue(c)
	if !ok {
		return
	}

	record, err := h.service.Get(c.Request.Context(), h.key, value)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Delete removes one record.
func (h *RecordHandler[T]) Delete(c *gin.Context) {
	value, ok := h.lookupValue(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), h.key, value); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("The %s was deleted", h.name),
	})
}

type createRequest[T any] interface {
	Model() (*T, error)
}

type updateRequest interface {
	Changes() (map[string]interface{}, error)
}

// CreateRecord binds a JSON body of type R and stores the record it describes.
func CreateRecord[T any, R createRequest[T]](h *RecordHandler[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req R
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
			return
		}

		record, err := req.Model()
		if err != nil {
			apierrors.BadRequest(c, err.Error())
			return
		}

		if err := h.service.Create(c.Request.Context(), record); err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, record)
	}
}

// UpdateRecord binds a JSON body of type R and applies its changes.
func UpdateRecord[T any, R updateRequest](h *RecordHandler[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, ok := h.lookupValue(c)
		if !ok {
			return
		}

		var req R
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
			return
		}

		changes, err := req.Changes()
		if err != nil {
			apierrors.BadRequest(c, err.Error())
			return
		}

		record, err := h.service.Update(c.Request.Context(), h.key, value, changes)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

func (h *RecordHandler[T]) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoRecords):
		apierrors.NotFound(c, fmt.Sprintf("No %s found", h.service.Plural()))
	case errors.Is(err, services.ErrRecordNotFound):
		apierrors.NotFound(c, fmt.Sprintf("The %s does not exist", h.name))
	case errors.Is(err, services.ErrDuplicateRecord):
		apierrors.Conflict(c, fmt.Sprintf("The %s already exists", h.name))
	default:
		respondInternalError(c, h.logger, err)
	}
}

// respondInternalError logs an unexpected failure and answers 500 without
// leaking its details.
func respondInternalError(c *gin.Context, logger *zap.Logger, err error) {
	logger.Error("request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	apierrors.InternalError(c, "")
}

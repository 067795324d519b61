package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"taskboard/internal/domain"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler carries the task service shared by page and API handlers.
type Handler struct {
	Tasks *service.TaskService
}

func NewHandler(tasks *service.TaskService) *Handler {
	return &Handler{Tasks: tasks}
}

// taskID parses the :id route param. Non-numeric ids behave like missing rows.
func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// apiError maps the domain error taxonomy onto HTTP status codes for the
// JSON API.
func apiError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "field": ve.Field, "reason": ve.Reason})
		return
	}
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found", "id": nf.ID})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
}

package handlers

import (
	"net/http"

	"taskboard/internal/domain"
	"taskboard/internal/http/middleware"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

// JSON API surface over the same service operations as the HTML pages.

type createTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

type patchTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"` // empty string clears the due date
	IsResolved  *bool   `json:"is_resolved"`
}

// ListTasks returns all tasks in the default list order.
func (h *Handler) ListTasks(c *gin.Context) {
	tasks, err := h.Tasks.List(c.Request.Context())
	if err != nil {
		apiError(c, err)
		return
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// GetTask returns a single task by id.
func (h *Handler) GetTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	t, err := h.Tasks.Get(c.Request.Context(), id)
	if err != nil {
		apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// CreateTask creates a task from a JSON body.
func (h *Handler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "field": "title", "reason": domain.ReasonRequired})
		return
	}

	t, err := h.Tasks.Create(c.Request.Context(), domain.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		apiError(c, err)
		return
	}

	middleware.TaskOps.WithLabelValues("created").Inc()
	c.JSON(http.StatusCreated, t)
}

// ReplaceTask is a full update of the mutable fields (PUT semantics).
func (h *Handler) ReplaceTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "field": "title", "reason": domain.ReasonRequired})
		return
	}

	t, err := h.Tasks.Edit(c.Request.Context(), id, domain.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		apiError(c, err)
		return
	}

	middleware.TaskOps.WithLabelValues("edited").Inc()
	c.JSON(http.StatusOK, t)
}

// PatchTask merges the provided fields only; absent fields stay unchanged.
func (h *Handler) PatchTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	var req patchTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	patch := domain.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		IsResolved:  req.IsResolved,
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			patch.ClearDue = true
		} else {
			due, err := service.ParseDueDate(*req.DueDate)
			if err != nil {
				apiError(c, err)
				return
			}
			patch.DueDate = due
		}
	}

	t, err := h.Tasks.Patch(c.Request.Context(), id, patch)
	if err != nil {
		apiError(c, err)
		return
	}

	middleware.TaskOps.WithLabelValues("edited").Inc()
	c.JSON(http.StatusOK, t)
}

// ToggleTask flips the resolved flag.
func (h *Handler) ToggleTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	t, err := h.Tasks.ToggleResolved(c.Request.Context(), id)
	if err != nil {
		apiError(c, err)
		return
	}

	middleware.TaskOps.WithLabelValues("toggled").Inc()
	c.JSON(http.StatusOK, t)
}

// DeleteTask permanently removes the task.
func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	if err := h.Tasks.Delete(c.Request.Context(), id); err != nil {
		apiError(c, err)
		return
	}

	middleware.TaskOps.WithLabelValues("deleted").Inc()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

package handlers

import (
	"errors"
	"net/http"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/http/middleware"
	"taskboard/internal/logger"

	"github.com/gin-gonic/gin"
)

// taskView is a task decorated for templates.
type taskView struct {
	*domain.Task
	Due     string
	Overdue bool
}

// formView feeds the shared create/edit form template.
type formView struct {
	Action  string
	PostURL string
	Input   domain.TaskInput
	Errors  map[string]string
}

// ListPage renders the task list, due date ascending with undated tasks last.
func (h *Handler) ListPage(c *gin.Context) {
	tasks, err := h.Tasks.List(c.Request.Context())
	if err != nil {
		h.errorPage(c, err)
		return
	}

	now := time.Now()
	views := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, taskView{Task: t, Due: t.DueDateString(), Overdue: t.Overdue(now)})
	}

	c.HTML(http.StatusOK, "task_list.html", gin.H{
		"tasks": views,
		"flash": takeFlash(c),
	})
}

// NewTaskPage renders a blank create form.
func (h *Handler) NewTaskPage(c *gin.Context) {
	c.HTML(http.StatusOK, "task_form.html", formView{
		Action:  "Create",
		PostURL: "/tasks",
	})
}

// CreateTaskForm handles the create form POST. Invalid input re-renders the
// form with field errors; success redirects to the list.
func (h *Handler) CreateTaskForm(c *gin.Context) {
	var in domain.TaskInput
	_ = c.ShouldBind(&in)

	if _, err := h.Tasks.Create(c.Request.Context(), in); err != nil {
		h.formError(c, err, formView{Action: "Create", PostURL: "/tasks", Input: in})
		return
	}

	middleware.TaskOps.WithLabelValues("created").Inc()
	setFlash(c, "Task created successfully!")
	c.Redirect(http.StatusSeeOther, "/")
}

// EditTaskPage renders the form pre-filled with the stored task.
func (h *Handler) EditTaskPage(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		h.notFoundPage(c)
		return
	}
	t, err := h.Tasks.Get(c.Request.Context(), id)
	if err != nil {
		h.errorPage(c, err)
		return
	}
	c.HTML(http.StatusOK, "task_form.html", formView{
		Action:  "Edit",
		PostURL: "/tasks/" + c.Param("id"),
		Input: domain.TaskInput{
			Title:       t.Title,
			Description: t.Description,
			DueDate:     t.DueDateString(),
		},
	})
}

// EditTaskForm handles the edit form POST: full replace of the mutable fields.
func (h *Handler) EditTaskForm(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		h.notFoundPage(c)
		return
	}
	var in domain.TaskInput
	_ = c.ShouldBind(&in)

	if _, err := h.Tasks.Edit(c.Request.Context(), id, in); err != nil {
		h.formError(c, err, formView{Action: "Edit", PostURL: "/tasks/" + c.Param("id"), Input: in})
		return
	}

	middleware.TaskOps.WithLabelValues("edited").Inc()
	setFlash(c, "Task updated successfully!")
	c.Redirect(http.StatusSeeOther, "/")
}

// ToggleTaskForm flips the resolved flag and redirects to the list.
func (h *Handler) ToggleTaskForm(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		h.notFoundPage(c)
		return
	}
	t, err := h.Tasks.ToggleResolved(c.Request.Context(), id)
	if err != nil {
		h.errorPage(c, err)
		return
	}

	middleware.TaskOps.WithLabelValues("toggled").Inc()
	if t.IsResolved {
		setFlash(c, "Task marked as resolved!")
	} else {
		setFlash(c, "Task marked as unresolved!")
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// DeleteTaskPage renders the delete confirmation page.
func (h *Handler) DeleteTaskPage(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		h.notFoundPage(c)
		return
	}
	t, err := h.Tasks.Get(c.Request.Context(), id)
	if err != nil {
		h.errorPage(c, err)
		return
	}
	c.HTML(http.StatusOK, "task_confirm_delete.html", gin.H{
		"task":    taskView{Task: t, Due: t.DueDateString()},
		"postURL": "/tasks/" + c.Param("id") + "/delete",
	})
}

// DeleteTaskForm permanently removes the task and redirects to the list.
func (h *Handler) DeleteTaskForm(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		h.notFoundPage(c)
		return
	}
	if err := h.Tasks.Delete(c.Request.Context(), id); err != nil {
		h.errorPage(c, err)
		return
	}

	middleware.TaskOps.WithLabelValues("deleted").Inc()
	setFlash(c, "Task deleted successfully!")
	c.Redirect(http.StatusSeeOther, "/")
}

// formError re-renders the form with field errors for validation failures and
// falls back to the error page otherwise.
func (h *Handler) formError(c *gin.Context, err error, form formView) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		form.Errors = map[string]string{ve.Field: fieldMessage(ve)}
		c.HTML(http.StatusOK, "task_form.html", form)
		return
	}
	h.errorPage(c, err)
}

func (h *Handler) errorPage(c *gin.Context, err error) {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		h.notFoundPage(c)
		return
	}
	logger.Error("task page failed", "error", err)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"status":  http.StatusInternalServerError,
		"message": "Something went wrong. Please try again.",
	})
}

func (h *Handler) notFoundPage(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error.html", gin.H{
		"status":  http.StatusNotFound,
		"message": "Task not found.",
	})
}

func fieldMessage(ve *domain.ValidationError) string {
	switch {
	case ve.Field == "title":
		return "Title is required."
	case ve.Field == "due_date":
		return "Enter a valid date (YYYY-MM-DD)."
	default:
		return "Invalid value."
	}
}

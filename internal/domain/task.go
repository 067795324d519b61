package domain

import "time"

// DueDateFormat is the calendar-date layout used on forms and in the API.
// Due dates carry no time component and no timezone semantics.
const DueDateFormat = "2006-01-02"

// Task is the single domain entity: a to-do item.
type Task struct {
	ID          int64      `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	DueDate     *time.Time `db:"due_date" json:"due_date,omitempty"`
	IsResolved  bool       `db:"is_resolved" json:"is_resolved"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Overdue reports whether the task has a due date in the past and is still open.
func (t *Task) Overdue(now time.Time) bool {
	if t.IsResolved || t.DueDate == nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return t.DueDate.Before(today)
}

// DueDateString renders the due date for forms; empty when unset.
func (t *Task) DueDateString() string {
	if t.DueDate == nil {
		return ""
	}
	return t.DueDate.Format(DueDateFormat)
}

// TaskInput is the raw user-facing triple as it arrives from a form or API
// request, before validation.
type TaskInput struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	DueDate     string `form:"due_date" json:"due_date"`
}

// TaskPayload is a validated triple, ready for the repository.
type TaskPayload struct {
	Title       string
	Description string
	DueDate     *time.Time
}

// TaskPatch carries a partial update; nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	ClearDue    bool
	IsResolved  *bool
}

// Empty reports whether the patch would change nothing.
func (p *TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.DueDate == nil && !p.ClearDue && p.IsResolved == nil
}

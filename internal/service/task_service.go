package service

import (
	"context"

	"taskboard/internal/domain"
)

// TaskRepository is the persistence contract the service runs against.
type TaskRepository interface {
	Insert(ctx context.Context, p domain.TaskPayload) (*domain.Task, error)
	Find(ctx context.Context, id int64) (*domain.Task, error)
	ListAll(ctx context.Context) ([]*domain.Task, error)
	Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
	ToggleResolved(ctx context.Context, id int64) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

// TaskService wraps validation and repository access into the four user-facing
// operations. Each call is one self-contained transaction against the store;
// the service holds no cross-request state.
type TaskService struct {
	repo TaskRepository
}

// NewTaskService creates a task service over the given repository.
func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Create validates the input and persists a new task. The store assigns id and
// created_at; is_resolved starts false.
func (s *TaskService) Create(ctx context.Context, in domain.TaskInput) (*domain.Task, error) {
	payload, err := ValidateTaskInput(in)
	if err != nil {
		return nil, err
	}
	return s.repo.Insert(ctx, payload)
}

// Edit validates the input and replaces the three mutable fields of an
// existing task. An empty due date on the form clears the stored one.
func (s *TaskService) Edit(ctx context.Context, id int64, in domain.TaskInput) (*domain.Task, error) {
	payload, err := ValidateTaskInput(in)
	if err != nil {
		return nil, err
	}
	patch := domain.TaskPatch{
		Title:       &payload.Title,
		Description: &payload.Description,
	}
	if payload.DueDate != nil {
		patch.DueDate = payload.DueDate
	} else {
		patch.ClearDue = true
	}
	return s.repo.Update(ctx, id, patch)
}

// Patch applies a partial update; nil fields keep their stored value. Used by
// the JSON API. At least one field must be present.
func (s *TaskService) Patch(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	if patch.Empty() {
		return nil, &domain.ValidationError{Field: "patch", Reason: domain.ReasonEmptyPatch}
	}
	if patch.Title != nil {
		valid, err := ValidateTaskInput(domain.TaskInput{Title: *patch.Title})
		if err != nil {
			return nil, err
		}
		patch.Title = &valid.Title
	}
	return s.repo.Update(ctx, id, patch)
}

// ToggleResolved flips the resolved flag. Both transitions are always legal,
// so no validation runs.
func (s *TaskService) ToggleResolved(ctx context.Context, id int64) (*domain.Task, error) {
	return s.repo.ToggleResolved(ctx, id)
}

// Delete permanently removes the task. There is no soft delete; a second
// delete of the same id reports not found.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Get returns a single task by id.
func (s *TaskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	return s.repo.Find(ctx, id)
}

// List returns all tasks ordered by due date ascending with undated tasks
// last, ties broken by creation time.
func (s *TaskService) List(ctx context.Context) ([]*domain.Task, error) {
	return s.repo.ListAll(ctx)
}

package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"taskboard/internal/domain"
)

// MemoryTaskRepository keeps tasks in a map. It backs handler and service
// tests and mirrors the Postgres repository's contract, including ordering
// and the error taxonomy. Ids are never reused after deletion.
type MemoryTaskRepository struct {
	mu     sync.RWMutex
	tasks  map[int64]domain.Task
	nextID int64
}

func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{tasks: make(map[int64]domain.Task), nextID: 1}
}

func (r *MemoryTaskRepository) Insert(_ context.Context, p domain.TaskPayload) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	t := domain.Task{
		ID:          r.nextID,
		Title:       p.Title,
		Description: p.Description,
		DueDate:     p.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.nextID++
	r.tasks[t.ID] = t
	out := t
	return &out, nil
}

func (r *MemoryTaskRepository) Find(_ context.Context, id int64) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, &domain.NotFoundError{ID: id}
	}
	out := t
	return &out, nil
}

func (r *MemoryTaskRepository) ListAll(_ context.Context) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		cp := t
		out = append(out, &cp)
	}
	// due_date ascending, undated last, then created_at, then id
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.DueDate == nil && b.DueDate != nil:
			return false
		case a.DueDate != nil && b.DueDate == nil:
			return true
		case a.DueDate != nil && b.DueDate != nil && !a.DueDate.Equal(*b.DueDate):
			return a.DueDate.Before(*b.DueDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return out, nil
}

func (r *MemoryTaskRepository) Update(_ context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, &domain.NotFoundError{ID: id}
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.DueDate != nil {
		t.DueDate = patch.DueDate
	} else if patch.ClearDue {
		t.DueDate = nil
	}
	if patch.IsResolved != nil {
		t.IsResolved = *patch.IsResolved
	}
	t.UpdatedAt = time.Now().UTC()

	r.tasks[id] = t
	out := t
	return &out, nil
}

func (r *MemoryTaskRepository) ToggleResolved(_ context.Context, id int64) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, &domain.NotFoundError{ID: id}
	}
	t.IsResolved = !t.IsResolved
	t.UpdatedAt = time.Now().UTC()
	r.tasks[id] = t
	out := t
	return &out, nil
}

func (r *MemoryTaskRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return &domain.NotFoundError{ID: id}
	}
	delete(r.tasks, id)
	return nil
}

// Len reports the number of stored tasks. Test helper.
func (r *MemoryTaskRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}

package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"taskboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const taskColumns = `id, title, description, due_date, is_resolved, created_at, updated_at`

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

// Insert persists a new task. The store assigns id and created_at.
func (r *TaskRepository) Insert(ctx context.Context, p domain.TaskPayload) (*domain.Task, error) {
	t := &domain.Task{
		Title:       p.Title,
		Description: p.Description,
		DueDate:     p.DueDate,
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO tasks (title, description, due_date)
		 VALUES ($1, $2, $3)
		 RETURNING id, is_resolved, created_at, updated_at`,
		p.Title, p.Description, p.DueDate,
	).Scan(&t.ID, &t.IsResolved, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, &domain.StorageError{Op: "insert task", Err: err}
	}
	return t, nil
}

// Find returns the task with the given id.
func (r *TaskRepository) Find(ctx context.Context, id int64) (*domain.Task, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	return scanTask(row, id, "find task")
}

// ListAll returns every task, due date ascending with undated tasks last,
// ties broken by creation time. Each call reflects current store state.
func (r *TaskRepository) ListAll(ctx context.Context) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 ORDER BY due_date ASC NULLS LAST, created_at ASC, id ASC`)
	if err != nil {
		return nil, &domain.StorageError{Op: "list tasks", Err: err}
	}
	defer rows.Close()

	var res []*domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &t.IsResolved, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, &domain.StorageError{Op: "scan task", Err: err}
		}
		res = append(res, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "list tasks", Err: err}
	}
	return res, nil
}

// Update merges the non-nil patch fields into the row. id and created_at never
// appear in the SET list, so they stay immutable.
func (r *TaskRepository) Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	sets := []string{"updated_at = now()"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if patch.Title != nil {
		sets = append(sets, "title = "+arg(*patch.Title))
	}
	if patch.Description != nil {
		sets = append(sets, "description = "+arg(*patch.Description))
	}
	if patch.DueDate != nil {
		sets = append(sets, "due_date = "+arg(*patch.DueDate))
	} else if patch.ClearDue {
		sets = append(sets, "due_date = NULL")
	}
	if patch.IsResolved != nil {
		sets = append(sets, "is_resolved = "+arg(*patch.IsResolved))
	}

	query := `UPDATE tasks SET ` + strings.Join(sets, ", ") +
		` WHERE id = ` + arg(id) + ` RETURNING ` + taskColumns

	row := r.db.QueryRow(ctx, query, args...)
	return scanTask(row, id, "update task")
}

// ToggleResolved flips the flag in a single statement so the transition is
// atomic at the row level.
func (r *TaskRepository) ToggleResolved(ctx context.Context, id int64) (*domain.Task, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE tasks SET is_resolved = NOT is_resolved, updated_at = now()
		 WHERE id = $1 RETURNING `+taskColumns, id)
	return scanTask(row, id, "toggle task")
}

// Delete permanently removes the row. Deleting an absent id is an error, not
// a no-op.
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return &domain.StorageError{Op: "delete task", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{ID: id}
	}
	return nil
}

func scanTask(row pgx.Row, id int64, op string) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &t.IsResolved, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{ID: id}
		}
		return nil, &domain.StorageError{Op: op, Err: err}
	}
	return &t, nil
}

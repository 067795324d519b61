package service

import (
	"strings"
	"time"

	"taskboard/internal/domain"
)

// ValidateTaskInput checks a raw title/description/due-date triple and returns
// a payload ready for the repository. Pure function, no side effects.
func ValidateTaskInput(in domain.TaskInput) (domain.TaskPayload, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return domain.TaskPayload{}, &domain.ValidationError{Field: "title", Reason: domain.ReasonRequired}
	}

	due, err := ParseDueDate(in.DueDate)
	if err != nil {
		return domain.TaskPayload{}, err
	}

	return domain.TaskPayload{
		Title:       title,
		Description: in.Description,
		DueDate:     due,
	}, nil
}

// ParseDueDate parses an optional YYYY-MM-DD form value. Empty means no due
// date. Past dates are allowed: an overdue task is still a valid task.
func ParseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(domain.DueDateFormat, s)
	if err != nil {
		return nil, &domain.ValidationError{Field: "due_date", Reason: domain.ReasonInvalidFormat}
	}
	return &d, nil
}

package domain

import (
	"time"
)

// Goal is a long-running intention with no date bucketing. Goals share the
// shape of tasks minus priority and day semantics.
type Goal struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
}

// NewGoal creates a goal stamped with the given creation instant.
func NewGoal(id, text string, createdAt time.Time) Goal {
	return Goal{
		ID:        id,
		Text:      text,
		CreatedAt: createdAt.Format(time.RFC3339),
	}
}

package domain

import (
	"fmt"
	"strings"
)

// Priority is the urgency level of a task. Ordering between priorities is a
// view-time concern; nothing ordinal is stored.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Rank returns the display weight of the priority, highest first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// ParsePriority parses a priority name case-insensitively.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return PriorityHigh, nil
	case "medium":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	default:
		return "", fmt.Errorf("unknown priority: %q", s)
	}
}

// Task represents a single to-do item. Date is the local calendar-day key
// the task belongs to for list views; Deadline, when non-empty, surfaces the
// task in the deadlines view. The JSON field names are the persisted wire
// format and must stay stable across releases.
type Task struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Priority  Priority `json:"priority"`
	Date      string   `json:"date"`
	Deadline  string   `json:"deadline,omitempty"`
	Completed bool     `json:"completed"`
}

// NewTask creates a task for the given day. Completed always starts false.
func NewTask(id, text string, priority Priority, day Day) Task {
	return Task{
		ID:       id,
		Text:     text,
		Priority: priority,
		Date:     day.String(),
	}
}

// NewDeadlineTask creates a task through the deadline flow. The task's Date
// is set equal to its Deadline so it also appears in that day's list.
func NewDeadlineTask(id, text string, priority Priority, deadline Day) Task {
	t := NewTask(id, text, priority, deadline)
	t.Deadline = deadline.String()
	return t
}

// HasDeadline reports whether the task belongs in the deadlines view.
func (t Task) HasDeadline() bool {
	return t.Deadline != ""
}

// DeadlineDay parses the task's deadline key. Returns the zero Day when the
// task has no deadline or the stored key is malformed.
func (t Task) DeadlineDay() Day {
	if t.Deadline == "" {
		return Day{}
	}
	d, err := ParseDay(t.Deadline)
	if err != nil {
		return Day{}
	}
	return d
}

// TaskPatch names the task fields a partial update may replace. Nil fields
// are left untouched. Deadline edits must carry Date and Deadline together
// so the two keys stay in sync; that coupling is a caller contract, not a
// structural constraint.
type TaskPatch struct {
	Text     *string
	Date     *Day
	Deadline *Day
	Priority *Priority
}

// Apply merges the patch over the task field by field and returns the result.
func (t Task) Apply(p TaskPatch) Task {
	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.Date != nil {
		t.Date = p.Date.String()
	}
	if p.Deadline != nil {
		t.Deadline = p.Deadline.String()
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	return t
}

// DeadlineLabel renders the distance from today to a deadline as the
// user-facing label: Overdue, Today, Tomorrow, or "N days left".
func DeadlineLabel(deadline, today Day) string {
	days := today.DaysUntil(deadline)
	switch {
	case days < 0:
		return "Overdue"
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}

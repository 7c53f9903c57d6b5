package services

import (
	"github.com/tabrez-nitr/doit/internal/domain"
)

// Summary represents overall completion statistics for the task collection
type Summary struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	CompletionRate float64 `json:"completion_rate"` // 0..1, 0 for an empty collection
}

// PriorityBreakdown represents task counts per priority level
type PriorityBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// DayActivity represents completed and pending counts for one calendar day
type DayActivity struct {
	Day       domain.Day `json:"day"`
	Completed int        `json:"completed"`
	Pending   int        `json:"pending"`
}

// Trend is the direction of a day-over-day comparison
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendSteady Trend = "steady"
)

// DailyComparison represents today's completions against yesterday's
type DailyComparison struct {
	Today     int   `json:"today"`
	Yesterday int   `json:"yesterday"`
	Trend     Trend `json:"trend"`
}

// TaskSource is the view of the task collection the analytics read through
type TaskSource interface {
	All() []domain.Task
}

// AnalyticsService computes derived statistics over the task collection.
// All computations are pure reads; nothing here mutates state.
type AnalyticsService interface {
	// Summary returns totals and the completion rate for all tasks
	Summary() Summary

	// PriorityBreakdown returns task counts per priority level
	PriorityBreakdown() PriorityBreakdown

	// WeeklyActivity returns per-day counts for the 7 days ending today,
	// oldest day first
	WeeklyActivity(today domain.Day) []DayActivity

	// DailyComparison compares today's completed count with yesterday's
	DailyComparison(today domain.Day) DailyComparison

	// ActivityCounts returns the number of tasks per day key over the
	// inclusive range, suitable for heatmap rendering
	ActivityCounts(from, to domain.Day) map[string]int

	// CurrentStreak returns the length of the completion streak ending
	// today, or ending yesterday when today has no completion yet
	CurrentStreak(today domain.Day) int
}

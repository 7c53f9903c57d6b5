package services

import (
	"github.com/tabrez-nitr/doit/internal/domain"
)

// WeeklyActivityDays is the window length of the weekly activity view
const WeeklyActivityDays = 7

// analyticsServiceImpl implements the AnalyticsService interface
type analyticsServiceImpl struct {
	tasks TaskSource
}

// NewAnalyticsService creates a new AnalyticsService instance
func NewAnalyticsService(tasks TaskSource) AnalyticsService {
	return &analyticsServiceImpl{tasks: tasks}
}

// Summary returns totals and the completion rate for all tasks
func (a *analyticsServiceImpl) Summary() Summary {
	tasks := a.tasks.All()

	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	rate := 0.0
	if len(tasks) > 0 {
		rate = float64(completed) / float64(len(tasks))
	}

	return Summary{
		Total:          len(tasks),
		Completed:      completed,
		Pending:        len(tasks) - completed,
		CompletionRate: rate,
	}
}

// PriorityBreakdown returns task counts per priority level
func (a *analyticsServiceImpl) PriorityBreakdown() PriorityBreakdown {
	var breakdown PriorityBreakdown
	for _, t := range a.tasks.All() {
		switch t.Priority {
		case domain.PriorityHigh:
			breakdown.High++
		case domain.PriorityMedium:
			breakdown.Medium++
		case domain.PriorityLow:
			breakdown.Low++
		}
	}
	return breakdown
}

// WeeklyActivity returns per-day counts for the 7 days ending today
func (a *analyticsServiceImpl) WeeklyActivity(today domain.Day) []DayActivity {
	completed, pending := a.countsByDay()

	activity := make([]DayActivity, 0, WeeklyActivityDays)
	for offset := WeeklyActivityDays - 1; offset >= 0; offset-- {
		day := today.AddDays(-offset)
		key := day.String()
		activity = append(activity, DayActivity{
			Day:       day,
			Completed: completed[key],
			Pending:   pending[key],
		})
	}
	return activity
}

// DailyComparison compares today's completed count with yesterday's
func (a *analyticsServiceImpl) DailyComparison(today domain.Day) DailyComparison {
	completed, _ := a.countsByDay()

	todayCount := completed[today.String()]
	yesterdayCount := completed[today.AddDays(-1).String()]

	trend := TrendSteady
	switch {
	case todayCount > yesterdayCount:
		trend = TrendUp
	case todayCount < yesterdayCount:
		trend = TrendDown
	}

	return DailyComparison{
		Today:     todayCount,
		Yesterday: yesterdayCount,
		Trend:     trend,
	}
}

// ActivityCounts returns the number of tasks per day key over the inclusive
// range. Days without tasks are absent from the map.
func (a *analyticsServiceImpl) ActivityCounts(from, to domain.Day) map[string]int {
	if to.Before(from) {
		from, to = to, from
	}

	inRange := make(map[string]bool)
	for d := from; !to.Before(d); d = d.AddDays(1) {
		inRange[d.String()] = true
	}

	counts := make(map[string]int)
	for _, t := range a.tasks.All() {
		if inRange[t.Date] {
			counts[t.Date]++
		}
	}
	return counts
}

// CurrentStreak returns the length of the completion streak ending today.
// A streak day has at least one completed task. When today has no completion
// yet the streak may still be alive, so counting starts at yesterday.
func (a *analyticsServiceImpl) CurrentStreak(today domain.Day) int {
	completed, _ := a.countsByDay()

	day := today
	if completed[day.String()] == 0 {
		day = day.AddDays(-1)
	}

	streak := 0
	for completed[day.String()] > 0 {
		streak++
		day = day.AddDays(-1)
	}
	return streak
}

// countsByDay buckets completed and pending task counts by day key
func (a *analyticsServiceImpl) countsByDay() (completed, pending map[string]int) {
	completed = make(map[string]int)
	pending = make(map[string]int)
	for _, t := range a.tasks.All() {
		if t.Completed {
			completed[t.Date]++
		} else {
			pending[t.Date]++
		}
	}
	return completed, pending
}

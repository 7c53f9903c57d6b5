package notify

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/tabrez-nitr/doit/internal/domain"
	"github.com/tabrez-nitr/doit/internal/logging"
)

// DefaultInterval is the reminder polling interval.
const DefaultInterval = 2 * time.Hour

// TaskSource is the read-only view of the task collection the scheduler
// polls. The pending count is recomputed on every tick so reminders always
// reflect current state.
type TaskSource interface {
	PendingCount(day domain.Day) int
}

// Scheduler polls the pending-today task count on a fixed interval and
// emits a reminder through the notifier when there is anything left to do.
// The first check happens one full interval after Start; nothing is
// emitted at startup.
type Scheduler struct {
	source   TaskSource
	notifier Notifier
	interval time.Duration
	running  atomic.Bool
}

// NewScheduler creates a scheduler over the given task source and
// notifier. A non-positive interval falls back to DefaultInterval.
func NewScheduler(source TaskSource, notifier Notifier, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		source:   source,
		notifier: notifier,
		interval: interval,
	}
}

// Interval returns the effective polling interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Running reports whether the polling loop is active.
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

// Start runs the polling loop until ctx is cancelled. It returns
// immediately without starting a timer when permission is not granted, or
// when a loop is already running.
func (s *Scheduler) Start(ctx context.Context) {
	if s.notifier.Permission() != PermissionGranted {
		logging.Debug("reminder scheduler not started",
			zap.String("permission", string(s.notifier.Permission())))
		return
	}

	if !s.running.CompareAndSwap(false, true) {
		return
	}
	defer s.running.Store(false)

	logging.Debug("reminder scheduler started",
		zap.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.check()
		case <-ctx.Done():
			logging.Debug("reminder scheduler stopped", zap.Error(ctx.Err()))
			return
		}
	}
}

// check recomputes the pending-today count and emits a reminder when
// there is at least one pending task.
func (s *Scheduler) check() {
	pending := s.source.PendingCount(domain.Today())
	if pending == 0 {
		return
	}
	s.send(pending)
}

// send shows one reminder. Failures are contained here so a misbehaving
// notifier can never take the loop down.
func (s *Scheduler) send(pending int) {
	defer func() {
		if r := recover(); r != nil {
			logging.Warn("reminder delivery panicked", zap.Any("panic", r))
		}
	}()

	title := fmt.Sprintf(NotificationTitleFormat, pending)
	if err := s.notifier.Show(title, NotificationBody, NotificationTag); err != nil {
		logging.Warn("reminder delivery failed", zap.Error(err))
	}
}

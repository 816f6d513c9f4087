package wizard

import "time"

// Timer is a cancellable scheduled callback. Stop is safe to call after the
// callback has already fired.
type Timer interface {
	Stop()
}

// Scheduler schedules deferred callbacks. The controller holds at most one
// live Timer at a time.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// TimerScheduler is the production Scheduler backed by time.AfterFunc.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return stdTimer{time.AfterFunc(d, fn)}
}

type stdTimer struct {
	t *time.Timer
}

func (s stdTimer) Stop() {
	s.t.Stop()
}

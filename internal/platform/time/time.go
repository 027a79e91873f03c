// Package time contains time related helpers
package time

import (
	"sync"
	"time"
)

// Clock reports the current time. Components that expire or window data take one
// so tests can pin the wall clock
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock
type ClockFunc func() time.Time

// Now implements Clock
func (f ClockFunc) Now() time.Time { return f() }

// System is the real wall clock
var System Clock = ClockFunc(time.Now)

// Fake is a manually advanced clock for tests
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

// NewFake returns a Fake pinned at t
func NewFake(t time.Time) *Fake { return &Fake{now: t} }

// Now implements Clock
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance moves the clock forward by d
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

// Set pins the clock at t
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	f.now = t
	f.mu.Unlock()
}

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// DayKey formats t as a UTC calendar date (YYYY-MM-DD)
func DayKey(t time.Time) string { return t.UTC().Format(time.DateOnly) }

// MonthKey formats t as a UTC calendar month (YYYY-MM)
func MonthKey(t time.Time) string { return t.UTC().Format("2006-01") }

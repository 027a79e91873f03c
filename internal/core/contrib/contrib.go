// Package contrib buckets commits and feed events into a contribution calendar,
// a monthly rollup and an activity breakdown. It does no I/O
package contrib

import (
	"math"
	"sort"
	"time"

	"portfolio/internal/core/portfolio"
	ptime "portfolio/internal/platform/time"
)

// DaysPerMonth approximates a month when sizing the window
const DaysPerMonth = 30

// Kind is a contribution category
type Kind int

// Contribution categories
const (
	KindCommit Kind = iota
	KindPullRequest
	KindIssue
	KindReview
	numKinds
)

// Feed event types that count as contributions
const (
	EventPullRequest       = "PullRequestEvent"
	EventIssues            = "IssuesEvent"
	EventPullRequestReview = "PullRequestReviewEvent"
)

// Event is a feed event reduced to what the aggregator reads
type Event struct {
	Type      string
	CreatedAt time.Time
}

// KindOf classifies a feed event type. ok is false for types that do not count
func KindOf(eventType string) (Kind, bool) {
	switch eventType {
	case EventPullRequest:
		return KindPullRequest, true
	case EventIssues:
		return KindIssue, true
	case EventPullRequestReview:
		return KindReview, true
	default:
		return 0, false
	}
}

// Window is the trailing period stats are computed over
type Window struct {
	Start  time.Time
	End    time.Time
	Months int
}

// NewWindow returns the window of months*30 days ending at now
func NewWindow(now time.Time, months int) Window {
	if months < 0 {
		months = 0
	}
	now = now.UTC()
	return Window{
		Start:  now.Add(-time.Duration(months*DaysPerMonth) * 24 * time.Hour),
		End:    now,
		Months: months,
	}
}

// Contains reports whether t is at or after the window start
func (w Window) Contains(t time.Time) bool { return !t.Before(w.Start) }

// DayKeys lists every calendar date from Start to End inclusive, ascending
func (w Window) DayKeys() []string {
	d := startOfDay(w.Start)
	last := startOfDay(w.End)
	var out []string
	for !d.After(last) {
		out = append(out, ptime.DayKey(d))
		d = d.AddDate(0, 0, 1)
	}
	return out
}

// MonthKeys lists every calendar month touched by the window, ascending
func (w Window) MonthKeys() []string {
	m := startOfMonth(w.Start)
	last := startOfMonth(w.End)
	var out []string
	for !m.After(last) {
		out = append(out, ptime.MonthKey(m))
		m = m.AddDate(0, 1, 0)
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func startOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Tally accumulates contributions into pre-populated day and month buckets
type Tally struct {
	window Window
	days   map[string]int
	months map[string]int
	counts [numKinds]int
}

// NewTally pre-populates a zero bucket for every day and month of w
func NewTally(w Window) *Tally {
	t := &Tally{window: w, days: map[string]int{}, months: map[string]int{}}
	for _, k := range w.DayKeys() {
		t.days[k] = 0
	}
	for _, k := range w.MonthKeys() {
		t.months[k] = 0
	}
	return t
}

// Aggregate tallies commit timestamps and feed events over w
func Aggregate(w Window, commits []time.Time, events []Event) *Tally {
	t := NewTally(w)
	for _, at := range commits {
		t.Add(KindCommit, at)
	}
	for _, e := range events {
		t.AddEvent(e)
	}
	return t
}

// Add counts one contribution of kind k at time at.
// Contributions before the window are ignored; ones without a bucket still count toward totals
func (t *Tally) Add(k Kind, at time.Time) {
	if at.IsZero() || !t.window.Contains(at) || k < 0 || k >= numKinds {
		return
	}
	t.counts[k]++
	if _, ok := t.days[ptime.DayKey(at)]; ok {
		t.days[ptime.DayKey(at)]++
	}
	if _, ok := t.months[ptime.MonthKey(at)]; ok {
		t.months[ptime.MonthKey(at)]++
	}
}

// AddEvent counts e when its type is a contribution
func (t *Tally) AddEvent(e Event) {
	if k, ok := KindOf(e.Type); ok {
		t.Add(k, e.CreatedAt)
	}
}

// Count returns the number of contributions of kind k
func (t *Tally) Count(k Kind) int {
	if k < 0 || k >= numKinds {
		return 0
	}
	return t.counts[k]
}

// Total returns the sum over all kinds
func (t *Tally) Total() int {
	n := 0
	for _, c := range t.counts {
		n += c
	}
	return n
}

// Breakdown returns per kind counts with independently rounded percentages
func (t *Tally) Breakdown() portfolio.ActivityBreakdown {
	total := t.Total()
	share := func(k Kind) portfolio.Share {
		return portfolio.Share{Count: t.counts[k], Percentage: Percent(t.counts[k], total)}
	}
	return portfolio.ActivityBreakdown{
		Commits:      share(KindCommit),
		PullRequests: share(KindPullRequest),
		Issues:       share(KindIssue),
		CodeReviews:  share(KindReview),
	}
}

// Calendar returns one day per bucket, ascending by date
func (t *Tally) Calendar() []portfolio.ContributionDay {
	out := make([]portfolio.ContributionDay, 0, len(t.days))
	for date, n := range t.days {
		out = append(out, portfolio.ContributionDay{Date: date, Count: n, Level: Level(n)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Monthly returns the month rollup, ascending by month
func (t *Tally) Monthly() []portfolio.MonthlyContribution {
	keys := make([]string, 0, len(t.months))
	for k := range t.months {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]portfolio.MonthlyContribution, 0, len(keys))
	for _, k := range keys {
		m, err := time.Parse("2006-01", k)
		if err != nil {
			continue
		}
		out = append(out, portfolio.MonthlyContribution{
			Month: m.Month().String()[:3],
			Year:  k[:4],
			Count: t.months[k],
		})
	}
	return out
}

// Stats assembles the aggregate with the given repository summaries
func (t *Tally) Stats(repos []portfolio.RepoSummary) portfolio.ContributionStats {
	if repos == nil {
		repos = []portfolio.RepoSummary{}
	}
	return portfolio.ContributionStats{
		TotalContributions:      t.Total(),
		ActivityBreakdown:       t.Breakdown(),
		ContributionCalendar:    t.Calendar(),
		MonthlyContributions:    t.Monthly(),
		ContributedRepositories: repos,
	}
}

// Level maps a day count onto the 0..4 intensity scale
func Level(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 3:
		return 1
	case count <= 7:
		return 2
	case count <= 12:
		return 3
	default:
		return 4
	}
}

// Percent returns round(count/max(1,total)*100)
func Percent(count, total int) int {
	if total < 1 {
		total = 1
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

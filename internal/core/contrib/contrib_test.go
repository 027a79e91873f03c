package contrib

import (
	"testing"
	"time"

	"portfolio/internal/core/portfolio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestLevel(t *testing.T) {
	cases := map[int]int{
		0: 0, 1: 1, 3: 1, 4: 2, 7: 2, 8: 3, 12: 3, 13: 4, 500: 4, -1: 0,
	}
	for in, want := range cases {
		assert.Equalf(t, want, Level(in), "Level(%d)", in)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(0, 0))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 100, Percent(5, 5))
	assert.Equal(t, 50, Percent(1, 2))
}

func TestKindOf(t *testing.T) {
	k, ok := KindOf("PullRequestEvent")
	require.True(t, ok)
	assert.Equal(t, KindPullRequest, k)

	k, ok = KindOf("IssuesEvent")
	require.True(t, ok)
	assert.Equal(t, KindIssue, k)

	k, ok = KindOf("PullRequestReviewEvent")
	require.True(t, ok)
	assert.Equal(t, KindReview, k)

	for _, typ := range []string{"PushEvent", "WatchEvent", "IssueCommentEvent", ""} {
		_, ok := KindOf(typ)
		assert.Falsef(t, ok, "%q should not count", typ)
	}
}

func TestWindow_DayKeysInclusiveNoGaps(t *testing.T) {
	for _, months := range []int{1, 3, 12} {
		w := NewWindow(now, months)
		days := w.DayKeys()
		require.Len(t, days, months*DaysPerMonth+1)
		assert.Equal(t, w.Start.Format(time.DateOnly), days[0])
		assert.Equal(t, "2025-06-15", days[len(days)-1])

		for i := 1; i < len(days); i++ {
			prev, _ := time.Parse(time.DateOnly, days[i-1])
			cur, _ := time.Parse(time.DateOnly, days[i])
			require.Equalf(t, 24*time.Hour, cur.Sub(prev), "gap between %s and %s", days[i-1], days[i])
		}
	}
}

func TestWindow_MonthKeys(t *testing.T) {
	w := NewWindow(now, 1) // 2025-05-16 .. 2025-06-15
	assert.Equal(t, []string{"2025-05", "2025-06"}, w.MonthKeys())

	w = NewWindow(now, 12) // 2024-06-20 .. 2025-06-15
	keys := w.MonthKeys()
	assert.Equal(t, "2024-06", keys[0])
	assert.Equal(t, "2025-06", keys[len(keys)-1])
	assert.Len(t, keys, 13)
}

func TestAggregate(t *testing.T) {
	w := NewWindow(now, 1)
	commits := []time.Time{
		now.Add(-time.Hour),                           // 06-15
		now.Add(-26 * time.Hour),                      // 06-14
		now.Add(-40 * 24 * time.Hour),                 // before window
		time.Date(2025, 5, 16, 9, 0, 0, 0, time.UTC),  // start day, before start instant
		time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC), // May
		{}, // undated
	}
	events := []Event{
		{Type: EventPullRequest, CreatedAt: now.Add(-26 * time.Hour)},
		{Type: EventIssues, CreatedAt: now.Add(-26 * time.Hour)},
		{Type: "PushEvent", CreatedAt: now.Add(-26 * time.Hour)},
		{Type: EventPullRequestReview, CreatedAt: w.Start.Add(-time.Second)},
		{Type: EventPullRequestReview, CreatedAt: w.Start},
	}

	tally := Aggregate(w, commits, events)

	assert.Equal(t, 3, tally.Count(KindCommit))
	assert.Equal(t, 1, tally.Count(KindPullRequest))
	assert.Equal(t, 1, tally.Count(KindIssue))
	assert.Equal(t, 1, tally.Count(KindReview))
	assert.Equal(t, 6, tally.Total())

	byDate := map[string]portfolio.ContributionDay{}
	for _, d := range tally.Calendar() {
		byDate[d.Date] = d
	}
	assert.Equal(t, 1, byDate["2025-06-15"].Count)
	assert.Equal(t, 3, byDate["2025-06-14"].Count)
	assert.Equal(t, 1, byDate["2025-06-14"].Level)
	assert.Equal(t, 1, byDate["2025-05-16"].Count) // review at window start
	assert.Equal(t, 1, byDate["2025-05-20"].Count)

	monthly := tally.Monthly()
	require.Len(t, monthly, 2)
	assert.Equal(t, portfolio.MonthlyContribution{Month: "May", Year: "2025", Count: 2}, monthly[0])
	assert.Equal(t, portfolio.MonthlyContribution{Month: "Jun", Year: "2025", Count: 4}, monthly[1])

	b := tally.Breakdown()
	assert.Equal(t, portfolio.Share{Count: 3, Percentage: 50}, b.Commits)
	assert.Equal(t, portfolio.Share{Count: 1, Percentage: 17}, b.PullRequests)
	assert.Equal(t, portfolio.Share{Count: 1, Percentage: 17}, b.Issues)
	assert.Equal(t, portfolio.Share{Count: 1, Percentage: 17}, b.CodeReviews)
}

func TestAggregate_FutureDatedCountsWithoutBucket(t *testing.T) {
	w := NewWindow(now, 1)
	tally := Aggregate(w, []time.Time{now.Add(48 * time.Hour)}, nil)

	assert.Equal(t, 1, tally.Total())
	for _, d := range tally.Calendar() {
		assert.Zerof(t, d.Count, "day %s should stay empty", d.Date)
	}
	_, ok := tally.days["2025-06-17"]
	assert.False(t, ok, "no bucket is created outside the window")
}

func TestAggregate_Empty(t *testing.T) {
	w := NewWindow(now, 3)
	stats := Aggregate(w, nil, nil).Stats(nil)

	assert.Zero(t, stats.TotalContributions)
	assert.Equal(t, portfolio.Share{}, stats.ActivityBreakdown.Commits)
	assert.Equal(t, portfolio.Share{}, stats.ActivityBreakdown.CodeReviews)
	assert.Len(t, stats.ContributionCalendar, 3*DaysPerMonth+1)
	assert.NotNil(t, stats.ContributedRepositories)

	for i, d := range stats.ContributionCalendar {
		assert.Zero(t, d.Count)
		assert.Zero(t, d.Level)
		if i > 0 {
			assert.Less(t, stats.ContributionCalendar[i-1].Date, d.Date)
		}
	}
}

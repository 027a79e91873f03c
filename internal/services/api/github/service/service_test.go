package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"portfolio/internal/core/portfolio"
	"portfolio/internal/core/skills"
	"portfolio/internal/platform/cache"
	ptime "portfolio/internal/platform/time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	profileCalls atomic.Int32
	repoCalls    atomic.Int32
	topCalls     atomic.Int32
	statsCalls   atomic.Int32
	lastLimit    atomic.Int32
	lastMonths   atomic.Int32

	profileErr error
	reposErr   error
	statsErr   error
	repos      []portfolio.Repository
}

func (f *fakeClient) Profile(context.Context) (portfolio.Profile, error) {
	f.profileCalls.Add(1)
	if f.profileErr != nil {
		return portfolio.Profile{}, f.profileErr
	}
	return portfolio.Profile{Login: "octocat", Name: "Mona", CreatedAt: time.Now().AddDate(-3, 0, 0)}, nil
}

func (f *fakeClient) Repositories(context.Context) ([]portfolio.Repository, error) {
	f.repoCalls.Add(1)
	if f.reposErr != nil {
		return nil, f.reposErr
	}
	return f.repos, nil
}

func (f *fakeClient) TopRepositories(_ context.Context, limit int) ([]portfolio.Repository, error) {
	f.topCalls.Add(1)
	f.lastLimit.Store(int32(limit))
	return f.repos[:min(limit, len(f.repos))], nil
}

func (f *fakeClient) ContributionStats(_ context.Context, months int) (portfolio.ContributionStats, error) {
	f.statsCalls.Add(1)
	f.lastMonths.Store(int32(months))
	if f.statsErr != nil {
		return portfolio.ContributionStats{}, f.statsErr
	}
	return portfolio.ContributionStats{TotalContributions: months * 10}, nil
}

func newSvc(t *testing.T, fc *fakeClient) (*Svc, *ptime.Fake, *cache.Cache) {
	t.Helper()
	if fc.repos == nil {
		fc.repos = []portfolio.Repository{
			{Name: "site", Language: "TypeScript", Stars: 3},
			{Name: "ml", Language: "Python", Stars: 9},
			{Name: "tool", Language: "Go", Stars: 5},
		}
	}
	clock := ptime.NewFake(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	c := cache.New(cache.WithClock(clock))
	return New(fc, c, skills.Default(), Config{}), clock, c
}

func TestNew_PanicsOnMissingDeps(t *testing.T) {
	assert.Panics(t, func() { New(nil, cache.New(), skills.Default(), Config{}) })
	assert.Panics(t, func() { New(&fakeClient{}, nil, skills.Default(), Config{}) })
	assert.Panics(t, func() { New(&fakeClient{}, cache.New(), nil, Config{}) })
}

func TestProfile_CachedUntilTTL(t *testing.T) {
	fc := &fakeClient{}
	s, clock, c := newSvc(t, fc)
	ctx := context.Background()

	_, err := s.Profile(ctx)
	require.NoError(t, err)
	_, err = s.Profile(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, fc.profileCalls.Load())
	assert.True(t, c.Has("profile"))

	clock.Advance(5 * time.Minute)
	_, err = s.Profile(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, fc.profileCalls.Load(), "ttl boundary is inclusive")

	clock.Advance(time.Millisecond)
	_, err = s.Profile(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, fc.profileCalls.Load())
}

func TestRepos_KeyedByDetailsFlag(t *testing.T) {
	fc := &fakeClient{}
	s, _, c := newSvc(t, fc)
	ctx := context.Background()

	_, _ = s.Repos(ctx, true)
	_, _ = s.Repos(ctx, false)
	_, _ = s.Repos(ctx, true)
	assert.EqualValues(t, 2, fc.repoCalls.Load())
	assert.True(t, c.Has(`repos_{"includeDetails":true}`))
	assert.True(t, c.Has(`repos_{"includeDetails":false}`))
}

func TestTopRepos_DefaultLimitAndKey(t *testing.T) {
	fc := &fakeClient{}
	s, clock, c := newSvc(t, fc)
	ctx := context.Background()

	_, err := s.TopRepos(ctx, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 8, fc.lastLimit.Load())
	assert.True(t, c.Has(`topRepos_{"limit":8}`))

	_, _ = s.TopRepos(ctx, 2)
	_, _ = s.TopRepos(ctx, 2)
	assert.EqualValues(t, 2, fc.topCalls.Load())

	clock.Advance(2*time.Minute + time.Second)
	_, _ = s.TopRepos(ctx, 2)
	assert.EqualValues(t, 3, fc.topCalls.Load())
}

func TestAllRepos_PythonFirst(t *testing.T) {
	fc := &fakeClient{}
	s, _, c := newSvc(t, fc)

	got, err := s.AllRepos(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "ml", got[0].Name)
	assert.Equal(t, "site", got[1].Name)
	assert.Equal(t, "tool", got[2].Name)
	assert.Equal(t, "site", fc.repos[0].Name, "client data is not reordered")
	assert.True(t, c.Has("allRepos"))
}

func TestContributions_DefaultsAndRecent(t *testing.T) {
	fc := &fakeClient{}
	s, _, c := newSvc(t, fc)
	ctx := context.Background()

	st, err := s.Contributions(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 120, st.TotalContributions)
	assert.True(t, c.Has(`contributions_{"months":12}`))

	st, err = s.RecentContributions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30, st.TotalContributions)
	assert.True(t, c.Has(`contributions_{"months":3}`))

	_, _ = s.Contributions(ctx, 3)
	assert.EqualValues(t, 2, fc.statsCalls.Load())
}

func TestContributions_ErrorsAreNotCached(t *testing.T) {
	boom := errors.New("boom")
	fc := &fakeClient{statsErr: boom}
	s, _, c := newSvc(t, fc)
	ctx := context.Background()

	_, err := s.Contributions(ctx, 6)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, c.Len())

	fc.statsErr = nil
	st, err := s.Contributions(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, 60, st.TotalContributions)
}

func TestPortfolioData(t *testing.T) {
	fc := &fakeClient{}
	s, _, c := newSvc(t, fc)

	out, err := s.PortfolioData(context.Background(), 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, fc.lastMonths.Load())
	assert.Equal(t, "Mona", out.Profile.Name)
	assert.Equal(t, 30, out.Contributions.Total)
	assert.Equal(t, 17, out.Repositories.StarsCount)
	assert.NotEmpty(t, out.Skills)
	assert.Zero(t, c.Len(), "portfolio data bypasses the cache")

	_, err = s.PortfolioData(context.Background(), 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, fc.repoCalls.Load())
}

func TestPortfolioData_ProfileFailureDegrades(t *testing.T) {
	fc := &fakeClient{profileErr: errors.New("404")}
	s, _, _ := newSvc(t, fc)

	out, err := s.PortfolioData(context.Background(), 6)
	require.NoError(t, err)
	assert.Equal(t, portfolio.ProfileSummary{}, out.Profile)
	assert.Zero(t, out.Experience.YearsActive)
	assert.Equal(t, 60, out.Contributions.Total)
}

func TestPortfolioData_RepositoryOrStatsFailureFails(t *testing.T) {
	boom := errors.New("boom")

	s, _, _ := newSvc(t, &fakeClient{reposErr: boom})
	_, err := s.PortfolioData(context.Background(), 3)
	assert.ErrorIs(t, err, boom)

	s, _, _ = newSvc(t, &fakeClient{statsErr: boom})
	_, err = s.PortfolioData(context.Background(), 3)
	assert.ErrorIs(t, err, boom)
}

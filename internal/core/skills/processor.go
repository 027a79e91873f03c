package skills

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"portfolio/internal/core/portfolio"
)

// Tuning knobs for the derived view
const (
	MaxSkills       = 20
	TopLanguages    = 5
	TopRepositories = 5

	languageWeight  = 3
	histogramWeight = 2
)

const yearLength = time.Duration(365.25 * 24 * float64(time.Hour))

// Input is everything the processor reads. Any part may be missing
type Input struct {
	Profile       *portfolio.Profile
	Repositories  []portfolio.Repository
	Contributions *portfolio.ContributionStats
	Now           time.Time
}

// Processor derives the portfolio view. It keeps no state between calls
type Processor struct {
	matcher *Matcher
}

// NewProcessor builds a processor over the given taxonomy
func NewProcessor(t Taxonomy) *Processor {
	return &Processor{matcher: NewMatcher(t)}
}

// Default returns a processor over the embedded taxonomy
func Default() *Processor { return NewProcessor(DefaultTaxonomy()) }

// Process computes the derived view from in
func (p *Processor) Process(in Input) portfolio.Processed {
	out := portfolio.Processed{
		Skills: []portfolio.Skill{},
		Experience: portfolio.Experience{
			TopLanguages:    []string{},
			Recommendations: []string{},
		},
		Repositories: portfolio.RepositorySummary{
			TopRepos:             []portfolio.Repository{},
			LanguageDistribution: []portfolio.LanguageCount{},
		},
		Contributions: portfolio.ContributionSummary{
			ByMonth: []portfolio.MonthlyContribution{},
		},
	}

	t := newTally()
	if len(in.Repositories) > 0 {
		p.repositories(in.Repositories, t, &out)
	}
	if in.Contributions != nil {
		contributions(in.Contributions, &out)
	}
	if in.Profile != nil {
		profile(in.Profile, in.Now, &out)
	}

	for _, lc := range out.Repositories.LanguageDistribution {
		t.add(lc.Language, lc.Count*histogramWeight)
	}
	out.Skills = t.top(MaxSkills)
	out.Experience.Recommendations = Recommendations(out)
	return out
}

func (p *Processor) repositories(repos []portfolio.Repository, t *tally, out *portfolio.Processed) {
	hist := newTally()
	stars, forks := 0, 0
	for _, r := range repos {
		lang := Fold(r.Language)
		if lang != "" {
			hist.add(lang, 1)
		}
		stars += r.Stars
		forks += r.Forks

		p.scan(r.Name, t)
		p.scan(r.Description, t)
		for _, topic := range r.Topics {
			p.scan(topic, t)
		}
		if lang != "" {
			t.add(lang, languageWeight)
		}
	}

	sorted := slices.Clone(repos)
	slices.SortStableFunc(sorted, func(a, b portfolio.Repository) int { return b.Stars - a.Stars })
	out.Repositories.TopRepos = sorted[:min(TopRepositories, len(sorted))]
	out.Repositories.StarsCount = stars
	out.Repositories.ForksCount = forks

	for _, kv := range hist.sorted() {
		out.Repositories.LanguageDistribution = append(out.Repositories.LanguageDistribution,
			portfolio.LanguageCount{Language: kv.key, Count: kv.n})
		if len(out.Experience.TopLanguages) < TopLanguages {
			out.Experience.TopLanguages = append(out.Experience.TopLanguages, kv.key)
		}
	}
}

func (p *Processor) scan(text string, t *tally) {
	p.matcher.Match(Fold(text), func(kw string) { t.add(kw, 1) })
}

func contributions(c *portfolio.ContributionStats, out *portfolio.Processed) {
	out.Contributions.Total = c.TotalContributions
	ab := c.ActivityBreakdown
	out.Contributions.ActivityBreakdown = &ab
	if c.MonthlyContributions != nil {
		out.Contributions.ByMonth = c.MonthlyContributions
	}
	out.Experience.ContributionStreak = LongestStreak(c.ContributionCalendar)
}

func profile(pr *portfolio.Profile, now time.Time, out *portfolio.Processed) {
	out.Profile = portfolio.ProfileSummary{
		Name:        pr.Name,
		Bio:         pr.Bio,
		Location:    pr.Location,
		Company:     pr.Company,
		Blog:        pr.Blog,
		AvatarURL:   pr.AvatarURL,
		PublicRepos: pr.PublicRepos,
		Followers:   pr.Followers,
		Following:   pr.Following,
	}
	out.Experience.YearsActive = YearsActive(pr.CreatedAt, now)
}

// LongestStreak returns the longest run of consecutive non-zero days in the calendar
// after sorting it by date. The input is not modified
func LongestStreak(days []portfolio.ContributionDay) int {
	sorted := slices.Clone(days)
	slices.SortStableFunc(sorted, func(a, b portfolio.ContributionDay) int { return strings.Compare(a.Date, b.Date) })
	cur, best := 0, 0
	for _, d := range sorted {
		if d.Count > 0 {
			cur++
			best = max(best, cur)
		} else {
			cur = 0
		}
	}
	return best
}

// YearsActive is the account age in years rounded to one decimal. Zero created yields 0
func YearsActive(created, now time.Time) float64 {
	if created.IsZero() || now.IsZero() {
		return 0
	}
	years := float64(now.Sub(created)) / float64(yearLength)
	return math.Round(years*10) / 10
}

// Recommendations renders the threshold rules over a computed view, in rule order
func Recommendations(v portfolio.Processed) []string {
	out := []string{}

	if langs := v.Experience.TopLanguages; len(langs) > 0 {
		out = append(out, "Proficient in "+strings.Join(langs[:min(3, len(langs))], ", "))
	}

	switch total := v.Contributions.Total; {
	case total > 500:
		out = append(out, fmt.Sprintf("Active open-source contributor with %d contributions", total))
	case total > 100:
		out = append(out, "Regular open-source contributor")
	}

	switch stars := v.Repositories.StarsCount; {
	case stars > 100:
		out = append(out, fmt.Sprintf("Created popular repositories with %d total stars", stars))
	case stars > 10:
		out = append(out, "Developed well-received open-source projects")
	}

	switch streak := v.Experience.ContributionStreak; {
	case streak > 30:
		out = append(out, fmt.Sprintf("Consistent developer with a %d-day contribution streak", streak))
	case streak > 7:
		out = append(out, "Regular code contributor")
	}

	years := v.Experience.YearsActive
	switch whole := int(math.Floor(years)); {
	case years > 5:
		out = append(out, fmt.Sprintf("Experienced developer with %d+ years on GitHub", whole))
	case years > 2:
		out = append(out, fmt.Sprintf("Established developer with %d+ years of coding experience", whole))
	}

	return out
}

// tally is a counter that remembers first insertion order for stable ranking
type tally struct {
	order  []string
	counts map[string]int
}

type kv struct {
	key string
	n   int
}

func newTally() *tally { return &tally{counts: map[string]int{}} }

func (t *tally) add(key string, n int) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key] += n
}

// sorted returns entries by count descending, ties in insertion order
func (t *tally) sorted() []kv {
	out := make([]kv, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, kv{key: k, n: t.counts[k]})
	}
	slices.SortStableFunc(out, func(a, b kv) int { return b.n - a.n })
	return out
}

func (t *tally) top(n int) []portfolio.Skill {
	entries := t.sorted()
	entries = entries[:min(n, len(entries))]
	out := make([]portfolio.Skill, 0, len(entries))
	if len(entries) == 0 {
		return out
	}
	maxN := max(entries[0].n, 1)
	for _, e := range entries {
		level := min(100, int(math.Floor(float64(e.n)/float64(maxN)*100)))
		out = append(out, portfolio.Skill{Name: e.key, Level: level})
	}
	return out
}

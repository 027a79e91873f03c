// Package curate picks and orders repositories for display
package curate

import (
	"slices"
	"strings"

	"portfolio/internal/core/portfolio"
)

// Python is the language given reserved slots and first position
const Python = "Python"

// ByStars returns a copy of repos sorted by stars descending. Equal stars keep input order
func ByStars(repos []portfolio.Repository) []portfolio.Repository {
	out := slices.Clone(repos)
	slices.SortStableFunc(out, func(a, b portfolio.Repository) int { return b.Stars - a.Stars })
	return out
}

// IsPython reports whether r's primary language is Python, ignoring case
func IsPython(r portfolio.Repository) bool { return strings.EqualFold(r.Language, Python) }

// TopRepositories selects up to limit repositories: at most limit/2 of the most
// starred Python ones, then the most starred repository of each other language
// until the remaining quota is used. Repositories without a language are skipped
func TopRepositories(repos []portfolio.Repository, limit int) []portfolio.Repository {
	if limit <= 0 {
		return []portfolio.Repository{}
	}
	sorted := ByStars(repos)

	out := make([]portfolio.Repository, 0, limit)
	pyQuota := limit / 2
	for _, r := range sorted {
		if len(out) == pyQuota {
			break
		}
		if IsPython(r) {
			out = append(out, r)
		}
	}

	otherQuota := limit - len(out)
	seen := map[string]struct{}{}
	for _, r := range sorted {
		if otherQuota == 0 {
			break
		}
		if r.Language == "" || IsPython(r) {
			continue
		}
		if _, dup := seen[r.Language]; dup {
			continue
		}
		seen[r.Language] = struct{}{}
		out = append(out, r)
		otherQuota--
	}
	return out
}

// PythonFirst returns a copy with Python repositories moved ahead of the rest.
// Order within each group is preserved
func PythonFirst(repos []portfolio.Repository) []portfolio.Repository {
	out := slices.Clone(repos)
	slices.SortStableFunc(out, func(a, b portfolio.Repository) int {
		ap, bp := a.Language == Python, b.Language == Python
		switch {
		case ap && !bp:
			return -1
		case !ap && bp:
			return 1
		default:
			return 0
		}
	})
	return out
}

// Summaries maps the first n repositories to short references
func Summaries(repos []portfolio.Repository, n int) []portfolio.RepoSummary {
	n = min(n, len(repos))
	if n < 0 {
		n = 0
	}
	out := make([]portfolio.RepoSummary, 0, n)
	for _, r := range repos[:n] {
		out = append(out, r.Summary())
	}
	return out
}

package skills

import (
	"regexp"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Matcher holds one compiled whole word pattern per taxonomy keyword.
// It is immutable after NewMatcher and safe for concurrent use
type Matcher struct {
	keywords []string
	patterns []*regexp.Regexp
}

// NewMatcher compiles the taxonomy. Keywords are quoted so ".net" and "c++" match literally
func NewMatcher(t Taxonomy) *Matcher {
	kws := t.Keywords()
	m := &Matcher{keywords: kws, patterns: make([]*regexp.Regexp, len(kws))}
	for i, kw := range kws {
		m.patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
	}
	return m
}

// Keywords returns the keywords in match order
func (m *Matcher) Keywords() []string { return append([]string(nil), m.keywords...) }

// Match calls fn once for every keyword found in text, in taxonomy order
func (m *Matcher) Match(text string, fn func(keyword string)) {
	if text == "" {
		return
	}
	for i, re := range m.patterns {
		if re.MatchString(text) {
			fn(m.keywords[i])
		}
	}
}

var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFKC, cases.Lower(language.Und), width.Fold)
	},
}

// Fold lowercases s for scanning; fullwidth forms fold to ASCII
func Fold(s string) string {
	if s == "" {
		return ""
	}
	tr := foldPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	foldPool.Put(tr)
	if err != nil {
		return s
	}
	return out
}

// Package skills infers a ranked skill list and an experience summary from a
// profile, its repositories and its contribution stats. It does no I/O beyond
// loading an optional taxonomy file
package skills

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var embedded []byte

// Entry maps a canonical skill bucket to the keywords that count toward it
type Entry struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// Taxonomy is the ordered keyword table. Order decides tie breaks in the tally
type Taxonomy struct {
	Skills []Entry `yaml:"skills" json:"skills"`
}

// Keywords flattens the taxonomy in table order, dropping duplicates
func (t Taxonomy) Keywords() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, e := range t.Skills {
		for _, kw := range e.Keywords {
			if _, dup := seen[kw]; dup {
				continue
			}
			seen[kw] = struct{}{}
			out = append(out, kw)
		}
	}
	return out
}

// LoadTaxonomy parses a YAML taxonomy. Keywords are trimmed and lowercased; empty ones dropped
func LoadTaxonomy(r io.Reader) (Taxonomy, error) {
	var t Taxonomy
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return Taxonomy{}, fmt.Errorf("skills: parse taxonomy: %w", err)
	}
	if len(t.Skills) == 0 {
		return Taxonomy{}, fmt.Errorf("skills: taxonomy has no entries")
	}
	for i := range t.Skills {
		e := &t.Skills[i]
		e.Name = strings.TrimSpace(e.Name)
		if e.Name == "" {
			return Taxonomy{}, fmt.Errorf("skills: taxonomy entry %d has no name", i)
		}
		kws := e.Keywords[:0]
		for _, kw := range e.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				kws = append(kws, kw)
			}
		}
		e.Keywords = kws
	}
	return t, nil
}

// DefaultTaxonomy returns the embedded table
func DefaultTaxonomy() Taxonomy {
	t, err := LoadTaxonomy(bytes.NewReader(embedded))
	if err != nil {
		panic(err) // embedded file is part of the build
	}
	return t
}

// LoadFile reads a taxonomy from path. An empty path yields the embedded table
func LoadFile(path string) (Taxonomy, error) {
	if path == "" {
		return DefaultTaxonomy(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Taxonomy{}, fmt.Errorf("skills: open taxonomy: %w", err)
	}
	defer f.Close()
	return LoadTaxonomy(f)
}

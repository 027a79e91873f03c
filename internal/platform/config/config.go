// Package config reads typed settings from environment variables. Invalid values
// log a warning and fall back to the default; they never stop the process
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"portfolio/internal/platform/logger"
)

// Conf is a namespaced view over the environment, e.g. New().Prefix("GITHUB_")
type Conf struct{ prefix string }

// New returns the root view
func New() Conf { return Conf{} }

// Prefix returns a child view; prefixes concatenate
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) lookup(key string) string { return strings.TrimSpace(os.Getenv(c.key(key))) }

// Missing returns the full env names of keys that are unset or blank
func (c Conf) Missing(keys ...string) []string {
	var out []string
	for _, k := range keys {
		if c.lookup(k) == "" {
			out = append(out, c.key(k))
		}
	}
	return out
}

// may parses key with parse, or returns def when unset or unparsable
func may[T any](c Conf, key string, def T, kind string, parse func(string) (T, error)) T {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Named("config").Warn().
			Str("key", c.key(key)).
			Str("value", s).
			Interface("default", def).
			Msgf("invalid %s; using default", kind)
		return def
	}
	return v
}

// MayString returns the trimmed value or def
func (c Conf) MayString(key, def string) string {
	return may(c, key, def, "string", func(s string) (string, error) { return s, nil })
}

// MayInt parses a base 10 int
func (c Conf) MayInt(key string, def int) int {
	return may(c, key, def, "int", strconv.Atoi)
}

// MayBool parses 1/0, true/false, t/f
func (c Conf) MayBool(key string, def bool) bool {
	return may(c, key, def, "bool", strconv.ParseBool)
}

// MayDuration parses a Go duration like 90s or 5m
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, "duration", time.ParseDuration)
}

// MayCSV splits on commas, trims, and drops empty items; def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.lookup(key), ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

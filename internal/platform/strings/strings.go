// Package strings holds the small string helpers modules and adapters share
package strings

import std "strings"

// Or returns in unless it is empty
func Or[S ~[]E, E any](in, def S) S {
	if len(in) == 0 {
		return def
	}
	return in
}

// Required panics with "<what> is required" when s is blank
func Required(s, what string) string {
	if std.TrimSpace(s) == "" {
		panic(what + " is required")
	}
	return s
}

// MustPrefix normalizes a mount path like /github to one leading slash and no trailing one.
// Panics when nothing but slashes is left
func MustPrefix(s string) string {
	s = "/" + std.Trim(s, " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// Deref reads a nullable JSON string; null becomes ""
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}

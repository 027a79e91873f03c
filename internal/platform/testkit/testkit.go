// Package testkit holds helpers for package-level seams and long log output
package testkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Swap replaces *target for the duration of t and restores it on cleanup
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// MustContain fails t unless haystack contains needle. Log captures get long,
// so the full haystack goes to a temp file instead of the failure message
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		return
	}
	out := filepath.Join(t.TempDir(), "haystack.txt")
	_ = os.WriteFile(out, []byte(haystack), 0o600)
	t.Fatalf("expected output to contain %q\n\nfull output written to %s", needle, out)
}

package slug

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	// MaxLen is the width of the slug columns.
	MaxLen = 255

	// maxAttempts bounds the suffix search so a broken exists func cannot spin forever.
	maxAttempts = 10000
)

// ErrExhausted is returned when no free candidate was found within maxAttempts.
var ErrExhausted = errors.New("slug: no free candidate")

// ExistsFunc reports whether candidate is already taken.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// Make converts free text to a lowercase, hyphen-delimited slug.
// Diacritics are stripped and every run of other characters becomes a single hyphen.
//
//	Make("Tech News")        // "tech-news"
//	Make("  Fakultas Teknik!") // "fakultas-teknik"
//	Make("Café Übersicht")   // "cafe-ubersicht"
func Make(s string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range norm.NFD.String(strings.ToLower(strings.TrimSpace(s))) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		default:
			pendingDash = true
		}
	}
	return b.String()
}

// Unique returns base if it is free, otherwise the first free base-1, base-2, ...
// Candidates never exceed MaxLen; base is shortened to make room for the suffix.
// base is expected to come from Make, so it is ASCII.
func Unique(ctx context.Context, base string, exists ExistsFunc) (string, error) {
	base = truncate(base, MaxLen)
	candidate := base
	for i := 1; i <= maxAttempts; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		suffix := fmt.Sprintf("-%d", i)
		candidate = truncate(base, MaxLen-len(suffix)) + suffix
	}
	return "", fmt.Errorf("%w for %q", ErrExhausted, base)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimRight(s[:n], "-")
}

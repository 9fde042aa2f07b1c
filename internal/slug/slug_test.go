package slug

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	tests := map[string]string{
		"Tech News":             "tech-news",
		"  Fakultas   Teknik  ": "fakultas-teknik",
		"Hello, World!":         "hello-world",
		"Café Übersicht":        "cafe-ubersicht",
		"already-a-slug":        "already-a-slug",
		"--edge--case--":        "edge-case",
		"Version 2.0":           "version-2-0",
		"!!!":                   "",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, Make(in))
		})
	}
}

func TestUnique(t *testing.T) {
	taken := map[string]bool{"tech-news": true, "tech-news-1": true}
	exists := func(_ context.Context, candidate string) (bool, error) {
		return taken[candidate], nil
	}

	got, err := Unique(context.Background(), "tech-news", exists)
	require.NoError(t, err)
	assert.Equal(t, "tech-news-2", got)

	got, err = Unique(context.Background(), "campus", exists)
	require.NoError(t, err)
	assert.Equal(t, "campus", got)
}

func TestUnique_StaysWithinColumnWidth(t *testing.T) {
	long := Make(strings.Repeat("a", MaxLen))
	require.Len(t, long, MaxLen)

	taken := map[string]bool{long: true}
	exists := func(_ context.Context, candidate string) (bool, error) {
		return taken[candidate], nil
	}

	got, err := Unique(context.Background(), long, exists)
	require.NoError(t, err)
	assert.Len(t, got, MaxLen)
	assert.Equal(t, strings.Repeat("a", MaxLen-2)+"-1", got)

	// A cut that lands on a hyphen must not leave "--" before the suffix.
	hyphenated := strings.Repeat("a", MaxLen-3) + "-bb"
	taken[hyphenated] = true
	got, err = Unique(context.Background(), hyphenated, exists)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", MaxLen-3)+"-1", got)
	assert.LessOrEqual(t, len(got), MaxLen)

	got, err = Unique(context.Background(), strings.Repeat("b", MaxLen+10), exists)
	require.NoError(t, err)
	assert.Len(t, got, MaxLen)
}

func TestUnique_PropagatesLookupError(t *testing.T) {
	boom := errors.New("db down")
	_, err := Unique(context.Background(), "x", func(context.Context, string) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestUnique_Exhausted(t *testing.T) {
	_, err := Unique(context.Background(), "x", func(context.Context, string) (bool, error) {
		return true, nil
	})
	assert.ErrorIs(t, err, ErrExhausted)
}

package units

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Unit names accepted by Lookup.
const (
	UnitGrapheme = "grapheme"
	UnitRune     = "rune"
)

// ErrUnknownUnit is returned by Lookup for an unsupported unit name.
var ErrUnknownUnit = errors.New("unknown length unit")

// Counter measures and cuts text in visible units.
type Counter interface {
	// Count returns the number of units in text.
	Count(text string) int

	// Prefix returns the first n units of text.
	// Returns "" for n <= 0 and text unchanged when it has n units or fewer.
	Prefix(text string, n int) string

	// FitsInLimit returns true if text has at most limit units. Truncation
	// calls it to decide whether markup needs cutting at all.
	FitsInLimit(text string, limit int) bool
}

// Graphemes counts extended grapheme clusters.
type Graphemes struct{}

// Count returns the number of grapheme clusters in text.
func (Graphemes) Count(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// Prefix returns the first n grapheme clusters of text.
func (Graphemes) Prefix(text string, n int) string {
	if n <= 0 {
		return ""
	}

	rest := text
	state := -1
	for i := 0; i < n && rest != ""; i++ {
		_, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
	}
	return text[:len(text)-len(rest)]
}

// FitsInLimit returns true if text has at most limit grapheme clusters.
// It stops segmenting as soon as the limit is exceeded.
func (Graphemes) FitsInLimit(text string, limit int) bool {
	if limit < 0 {
		return false
	}

	state := -1
	for n := 0; text != ""; n++ {
		if n == limit {
			return false
		}
		_, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
	}
	return true
}

// Runes counts Unicode code points.
type Runes struct{}

// Count returns the number of code points in text.
func (Runes) Count(text string) int {
	return utf8.RuneCountInString(text)
}

// Prefix returns the first n code points of text.
func (Runes) Prefix(text string, n int) string {
	if n <= 0 {
		return ""
	}

	i := 0
	for pos := range text {
		if i == n {
			return text[:pos]
		}
		i++
	}
	return text
}

// FitsInLimit returns true if text has at most limit code points.
func (r Runes) FitsInLimit(text string, limit int) bool {
	return limit >= 0 && r.Count(text) <= limit
}

// Default returns the counter used when none is configured.
func Default() Counter {
	return Graphemes{}
}

// Lookup returns the counter registered under name.
// An empty name selects the default counter.
func Lookup(name string) (Counter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", UnitGrapheme:
		return Graphemes{}, nil
	case UnitRune:
		return Runes{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
}

// Name returns the unit name of a built-in counter, or "" for custom ones.
func Name(c Counter) string {
	switch c.(type) {
	case Graphemes, *Graphemes:
		return UnitGrapheme
	case Runes, *Runes:
		return UnitRune
	default:
		return ""
	}
}

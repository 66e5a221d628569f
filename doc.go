// Package markupkit truncates HTML and XML markup to a visible length while
// keeping the result well formed.
//
// Each subpackage can be used independently:
//
//   - truncate: The markup truncator, tag stripping and visible length
//   - units: Grapheme and rune counting
//   - entity: HTML 4.01 named entity encoding and decoding
//   - preset: Named truncation profiles loaded from YAML, TOML or JSON
//   - excerpt: Text templates with markup truncation helpers
//
// The shorten command in cmd/shorten exposes the truncator on the command line.
//
// # Quick Start
//
// Truncation with defaults:
//
//	import "github.com/randalmurphal/markupkit/truncate"
//	out := truncate.Markup("<p>Hello <b>world</b></p>", 8)
//	// out: "<p>Hello <b>wo</b></p>…"
//
// Custom options:
//
//	t := truncate.New().
//		WithAppendix("...").
//		WithAppendixInside(true).
//		WithWordsafe(true)
//	out, err := t.Truncate(article, 200)
//
// Presets:
//
//	import "github.com/randalmurphal/markupkit/preset"
//	store, err := preset.NewStore("presets.yaml")
//	out, err := store.Apply("teaser", article)
package markupkit

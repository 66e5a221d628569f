// Package units provides length and prefix primitives for visible text.
//
// Truncation budgets are measured in user-perceived characters. A family
// emoji such as 👨‍👩‍👧‍👦 is seven code points joined by zero width joiners,
// but it is one character on screen and should never be split.
//
// # Counter
//
// The Counter interface measures and cuts text in a single unit:
//
//	c := units.Graphemes{}
//	n := c.Count("👋🏽 hi")        // 4
//	p := c.Prefix("👋🏽 hi", 1)    // "👋🏽"
//	ok := c.FitsInLimit("hi", 2) // true
//
// Two counters are provided:
//
//   - Graphemes: extended grapheme clusters (Unicode UAX #29), the default
//   - Runes: Unicode code points, for callers that need codepoint budgets
//
// Counters are looked up by name for configuration files:
//
//	c, err := units.Lookup("rune")
package units

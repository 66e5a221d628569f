// Package truncate shortens HTML and XML-like markup to a visible length.
//
// The visible length counts text only. Tags cost nothing, an entity such as
// "&amp;" costs one, and a grapheme cluster such as 👋🏽 costs one. Tags left
// open by the cut are closed again, so the result stays well formed.
//
// # Basic Usage
//
//	s := truncate.Markup(`<a href="https://example.com/">Go to example site</a>`, 10)
//	// <a href="https://example.com/">Go to exam</a>…
//
// # Configuration
//
// Build a Truncator to change the appendix, place it inside the last open
// element, or cut back to a word boundary:
//
//	tr := truncate.New().
//	    WithAppendix("...").
//	    WithAppendixInside(true).
//	    WithWordsafe(true)
//	s, err := tr.Truncate(markup, 200)
//
// Truncate only fails when wordsafe truncation is enabled with an empty
// delimiter. Malformed markup never fails: closing tags that do not match the
// innermost open element are dropped, and a tag cut in half by a wordsafe
// trim is removed.
//
// # Entities
//
// Input that contains no entity references comes back with plain characters.
// Input that already contains entities comes back encoded, because original
// and introduced entities can no longer be told apart.
package truncate

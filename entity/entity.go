// Package entity encodes and decodes HTML character entities.
//
// Encode rewrites every character that has an HTML 4.01 named entity, except
// quotes, so "é" becomes "&eacute;" and "<" becomes "&lt;". Characters without
// a named entity, such as emoji or CJK text, pass through untouched. Decode
// reverses any semicolon-terminated entity, named or numeric.
package entity

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Pattern matches a single entity reference such as "&amp;", "&#65;" or "&#x41;".
var Pattern = regexp.MustCompile(`(?i)&#?[a-z0-9]+;`)

// Contains reports whether s holds at least one entity reference.
func Contains(s string) bool {
	return Pattern.MatchString(s)
}

// Encode replaces characters with their HTML 4.01 named entities.
// Double and single quotes are left as they are. Invalid UTF-8 bytes are
// copied through unchanged.
func Encode(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if name, ok := names[r]; ok && r != '"' && r != utf8.RuneError {
			sb.WriteByte('&')
			sb.WriteString(name)
			sb.WriteByte(';')
		} else {
			sb.WriteString(s[i : i+size])
		}
		i += size
	}
	return sb.String()
}

// Decode replaces every entity reference with the character it names.
// HTML 4.01 names resolve through the same table Encode uses, so any string
// produced by Encode decodes back to its input. Other names and numeric
// references are resolved by the HTML5 table; unknown names are kept.
func Decode(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return Pattern.ReplaceAllStringFunc(s, decodeOne)
}

func decodeOne(ref string) string {
	if r, ok := runes[ref[1:len(ref)-1]]; ok {
		return string(r)
	}
	return html.UnescapeString(ref)
}

// Name returns the HTML 4.01 entity name for r, if it has one.
func Name(r rune) (string, bool) {
	name, ok := names[r]
	return name, ok
}

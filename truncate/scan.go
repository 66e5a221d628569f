package truncate

import (
	"log/slog"
	"regexp"
	"strings"
)

// tokenPattern matches a tag, capturing its name, or an entity reference.
var tokenPattern = regexp.MustCompile(`(?i)</?([a-z0-9]+)[^>]*>|&#?[a-z0-9]+;`)

// selfClosing lists the HTML void elements, which never take a closing tag.
// Names are matched case-insensitively, so <BR> and <Img> are void as well.
var selfClosing = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
	"command": true, "keygen": true, "menuitem": true,
}

type tokenKind int

const (
	entityToken tokenKind = iota
	openToken
	closeToken
	selfClosingToken
)

// token is one tag or entity found in markup. Offsets are in bytes.
type token struct {
	kind  tokenKind
	start int
	end   int
	text  string
	name  string
}

// nextToken finds the first tag or entity at or after pos.
func nextToken(markup string, pos int) (token, bool) {
	m := tokenPattern.FindStringSubmatchIndex(markup[pos:])
	if m == nil {
		return token{}, false
	}

	tok := token{
		start: pos + m[0],
		end:   pos + m[1],
		text:  markup[pos+m[0] : pos+m[1]],
	}
	if m[2] < 0 {
		tok.kind = entityToken
		return tok, true
	}

	tok.name = markup[pos+m[2] : pos+m[3]]
	switch {
	case tok.text[1] == '/':
		tok.kind = closeToken
	case tok.text[len(tok.text)-2] == '/', selfClosing[strings.ToLower(tok.name)]:
		tok.kind = selfClosingToken
	default:
		tok.kind = openToken
	}
	return tok, true
}

// tagStack records the names of open tags, innermost last.
type tagStack []string

func (s *tagStack) push(name string) {
	*s = append(*s, name)
}

func (s *tagStack) pop() (string, bool) {
	if len(*s) == 0 {
		return "", false
	}
	name := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return name, true
}

func (s *tagStack) len() int {
	return len(*s)
}

// closeMatching pops the innermost tag if it is name. A mismatch leaves the
// stack as it was and reports false.
func (s *tagStack) closeMatching(name string) bool {
	open, ok := s.pop()
	if ok && open == name {
		return true
	}
	if ok {
		s.push(open)
	}
	return false
}

// result is truncated text together with the tags still open at its end.
type result struct {
	text  string
	stack tagStack
}

// scan copies markup until length visible units have been emitted.
func (t *Truncator) scan(markup string, length int) result {
	var out strings.Builder
	var stack tagStack
	emitted, pos := 0, 0

	for emitted < length {
		tok, ok := nextToken(markup, pos)
		if !ok {
			break
		}

		text := markup[pos:tok.start]
		n := t.counter.Count(text)
		// A plain ">" cutoff would emit an entity right at the limit and
		// overrun it by one. Staying within length takes precedence.
		if emitted+n > length || (emitted+n == length && tok.kind == entityToken) {
			out.WriteString(t.counter.Prefix(text, length-emitted))
			emitted = length
			break
		}
		out.WriteString(text)
		emitted += n

		switch tok.kind {
		case entityToken:
			out.WriteString(tok.text)
			emitted++
		case closeToken:
			if stack.closeMatching(tok.name) {
				out.WriteString(tok.text)
			} else {
				t.logger.Debug("dropping mismatched closing tag",
					slog.String("tag", tok.text),
					slog.Int("offset", tok.start))
			}
		case selfClosingToken:
			out.WriteString(tok.text)
		case openToken:
			out.WriteString(tok.text)
			stack.push(tok.name)
		}

		pos = tok.end
	}

	if emitted < length && pos < len(markup) {
		out.WriteString(t.counter.Prefix(markup[pos:], length-emitted))
	}

	return result{text: out.String(), stack: stack}
}

// openTags rebuilds the stack of tags left open at the end of markup.
// Closing tags that do not match the innermost open tag are ignored.
func openTags(markup string) tagStack {
	var stack tagStack
	for pos := 0; ; {
		tok, ok := nextToken(markup, pos)
		if !ok {
			return stack
		}
		switch tok.kind {
		case openToken:
			stack.push(tok.name)
		case closeToken:
			stack.closeMatching(tok.name)
		}
		pos = tok.end
	}
}

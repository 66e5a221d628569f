package truncate

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/randalmurphal/markupkit/entity"
	"github.com/randalmurphal/markupkit/units"
)

// DefaultLength is the visible length used when callers have no preference.
const DefaultLength = 400

// DefaultAppendix marks truncated content.
const DefaultAppendix = "…"

// DefaultDelimiter separates words for wordsafe truncation.
const DefaultDelimiter = " "

// trimSet is the whitespace removed when deciding whether markup is empty.
const trimSet = " \t\n\r\x00\x0B"

// Options holds the parameters of a Truncator.
type Options struct {
	// Appendix is added after truncated content.
	Appendix string

	// AppendixInside places the appendix inside the innermost open element
	// instead of after the closing tags.
	AppendixInside bool

	// Wordsafe cuts back to the last Delimiter so no word is split.
	Wordsafe bool

	// Delimiter separates words. Must not be empty when Wordsafe is set.
	Delimiter string

	// Counter measures visible text. Nil selects units.Default().
	Counter units.Counter
}

// DefaultOptions returns the options used by New.
func DefaultOptions() Options {
	return Options{
		Appendix:  DefaultAppendix,
		Delimiter: DefaultDelimiter,
		Counter:   units.Default(),
	}
}

// Truncator shortens markup to a visible length.
// A configured Truncator is safe for concurrent use.
type Truncator struct {
	appendix       string
	appendixInside bool
	wordsafe       bool
	delimiter      string
	counter        units.Counter
	logger         *slog.Logger
}

// New creates a truncator with default options.
func New() *Truncator {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a truncator from opts.
func NewWithOptions(opts Options) *Truncator {
	counter := opts.Counter
	if counter == nil {
		counter = units.Default()
	}
	return &Truncator{
		appendix:       opts.Appendix,
		appendixInside: opts.AppendixInside,
		wordsafe:       opts.Wordsafe,
		delimiter:      opts.Delimiter,
		counter:        counter,
		logger:         slog.New(slog.DiscardHandler),
	}
}

// WithAppendix sets the text added after truncated content.
func (t *Truncator) WithAppendix(appendix string) *Truncator {
	t.appendix = appendix
	return t
}

// WithAppendixInside places the appendix inside the innermost open element.
func (t *Truncator) WithAppendixInside(inside bool) *Truncator {
	t.appendixInside = inside
	return t
}

// WithWordsafe enables cutting back to the last word delimiter.
func (t *Truncator) WithWordsafe(wordsafe bool) *Truncator {
	t.wordsafe = wordsafe
	return t
}

// WithDelimiter sets the word delimiter used by wordsafe truncation.
func (t *Truncator) WithDelimiter(delimiter string) *Truncator {
	t.delimiter = delimiter
	return t
}

// WithCounter sets the unit used to measure visible text.
func (t *Truncator) WithCounter(counter units.Counter) *Truncator {
	if counter != nil {
		t.counter = counter
	}
	return t
}

// WithLogger sets the logger for recovery diagnostics.
// Nothing is logged above debug level.
func (t *Truncator) WithLogger(logger *slog.Logger) *Truncator {
	if logger != nil {
		t.logger = logger
	}
	return t
}

// Options returns the truncator's current options.
func (t *Truncator) Options() Options {
	return Options{
		Appendix:       t.appendix,
		AppendixInside: t.appendixInside,
		Wordsafe:       t.wordsafe,
		Delimiter:      t.delimiter,
		Counter:        t.counter,
	}
}

// Truncate shortens markup to at most length visible units.
// A negative length is treated as zero. Markup whose visible text already
// fits is returned unchanged.
func (t *Truncator) Truncate(markup string, length int) (string, error) {
	if t.wordsafe && t.delimiter == "" {
		return "", fmt.Errorf("%w: delimiter cannot be empty for wordsafe truncation", ErrInvalidArgument)
	}
	if length < 0 {
		length = 0
	}

	if strings.Trim(markup, trimSet) == "" {
		return markup, nil
	}
	if length == 0 {
		if t.appendixInside {
			return "", nil
		}
		return t.appendix, nil
	}

	hasEntities := entity.Contains(markup)

	if fits(markup, length, t.counter) {
		return markup, nil
	}

	r := t.scan(normalize(markup), length)
	if t.wordsafe {
		r = t.trimToWord(r)
	}

	return t.finalize(r, hasEntities), nil
}

// finalize places the appendix, closes open tags, and decodes entities
// when the input had none of its own.
func (t *Truncator) finalize(r result, hasEntities bool) string {
	var sb strings.Builder
	sb.WriteString(r.text)

	if t.appendixInside {
		sb.WriteString(t.appendix)
	}
	for r.stack.len() > 0 {
		name, _ := r.stack.pop()
		sb.WriteString("</")
		sb.WriteString(name)
		sb.WriteString(">")
	}

	out := sb.String()
	if !hasEntities {
		out = entity.Decode(out)
	}
	if t.appendixInside {
		return out
	}
	return out + t.appendix
}

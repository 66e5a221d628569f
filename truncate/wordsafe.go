package truncate

import (
	"log/slog"
	"strings"
)

// trimToWord cuts r back to the last delimiter. When no delimiter is found
// the hard cut stands.
func (t *Truncator) trimToWord(r result) result {
	cut := strings.LastIndex(r.text, t.delimiter)
	if cut < 0 {
		t.logger.Debug("no word delimiter in truncated text",
			slog.String("delimiter", t.delimiter))
		return r
	}

	text := r.text[:cut]
	if lt := strings.LastIndexByte(text, '<'); lt > strings.LastIndexByte(text, '>') {
		text = strings.TrimRight(text[:lt], trimSet)
	}

	return result{text: text, stack: openTags(text)}
}

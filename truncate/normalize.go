package truncate

import (
	"strings"

	"github.com/google/uuid"

	"github.com/randalmurphal/markupkit/entity"
)

const zeroWidthJoiner = "\u200d"

// structural turns the delimiters the scanner needs back into raw characters.
var structural = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&")

// normalize encodes every character that has a named entity, except the
// markup delimiters. Afterwards each entity in the text is one scanner token,
// so it is counted as one unit and never cut in half.
//
// Zero width joiners are hidden from the encoder so emoji joiner sequences
// stay intact for grapheme counting.
func normalize(markup string) string {
	if !strings.Contains(markup, zeroWidthJoiner) {
		return structural.Replace(entity.Encode(markup))
	}

	placeholder := "___ZWJ_" + strings.ReplaceAll(uuid.NewString(), "-", "") + "___"
	markup = strings.ReplaceAll(markup, zeroWidthJoiner, placeholder)
	encoded := structural.Replace(entity.Encode(markup))
	return strings.ReplaceAll(encoded, placeholder, zeroWidthJoiner)
}

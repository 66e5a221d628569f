package truncate

// Markup truncates markup to length visible units with default options.
func Markup(markup string, length int) string {
	// The default options cannot fail.
	result, _ := New().Truncate(markup, length)
	return result
}

// Words truncates markup to length visible units, then cuts back to the last
// space so no word is split.
func Words(markup string, length int) string {
	result, _ := New().WithWordsafe(true).Truncate(markup, length)
	return result
}

// MarkupWith truncates markup to length visible units using opts.
func MarkupWith(markup string, length int, opts Options) (string, error) {
	return NewWithOptions(opts).Truncate(markup, length)
}

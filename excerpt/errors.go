package excerpt

import "errors"

// Sentinel errors for excerpt rendering.
var (
	// ErrEmpty is returned when the template string is empty.
	ErrEmpty = errors.New("template is empty")

	// ErrParse is returned when the template fails to parse.
	ErrParse = errors.New("template parse error")

	// ErrExecute is returned when template execution fails.
	ErrExecute = errors.New("template execution error")

	// ErrPreset is returned when the preset helper cannot resolve a preset.
	ErrPreset = errors.New("preset unavailable")
)

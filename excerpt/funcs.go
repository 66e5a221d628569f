package excerpt

import (
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/randalmurphal/markupkit/truncate"
)

// defaultFuncs returns the built-in template functions.
func (e *Engine) defaultFuncs() template.FuncMap {
	return template.FuncMap{
		"shorten":       shorten,
		"shortenWords":  truncate.Words,
		"preset":        e.applyPreset,
		"stripTags":     truncate.StripTags,
		"visibleLength": visibleLength,
		"upper":         strings.ToUpper,
		"lower":         strings.ToLower,
		"trim":          strings.TrimSpace,
		"default":       defaultValue,
	}
}

func shorten(markup string, n int) string {
	return truncate.Markup(markup, n)
}

func visibleLength(markup string) int {
	return truncate.VisibleLength(markup, nil)
}

// applyPreset truncates markup with the named preset from the engine's store.
func (e *Engine) applyPreset(name, markup string) (string, error) {
	if e.presets == nil {
		return "", fmt.Errorf("%w: no preset store configured for %q", ErrPreset, name)
	}

	out, err := e.presets.Apply(name, markup)
	if err != nil {
		e.logger.Warn("preset helper failed",
			slog.String("preset", name),
			slog.Any("error", err))
		return "", fmt.Errorf("%w: %w", ErrPreset, err)
	}
	return out, nil
}

// defaultValue returns the default if the value is nil or an empty string.
// For other types (including zero values like 0), the original value is returned.
func defaultValue(val, defaultVal any) any {
	if val == nil {
		return defaultVal
	}
	if s, ok := val.(string); ok && s == "" {
		return defaultVal
	}
	return val
}

package excerpt

import (
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/randalmurphal/markupkit/preset"
)

// Engine renders excerpt templates.
// Functions must be added before the engine is shared between goroutines.
type Engine struct {
	funcs   template.FuncMap
	presets *preset.Store
	logger  *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithPresets makes the presets in store available to the preset helper.
func WithPresets(store *preset.Store) EngineOption {
	return func(e *Engine) {
		e.presets = store
	}
}

// WithLogger sets the logger used for render diagnostics.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine with the default helper functions.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.funcs = e.defaultFuncs()
	return e
}

// Render executes tmpl against data.
func (e *Engine) Render(tmpl string, data any) (string, error) {
	t, err := e.parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if execErr := t.Execute(&buf, data); execErr != nil {
		e.logger.Debug("excerpt render failed", slog.Any("error", execErr))
		return "", fmt.Errorf("%w: %w", ErrExecute, execErr)
	}

	return buf.String(), nil
}

// Validate parses tmpl without executing it.
func (e *Engine) Validate(tmpl string) error {
	_, err := e.parse(tmpl)
	return err
}

// AddFunc adds a custom template function, replacing any helper of the same name.
func (e *Engine) AddFunc(name string, fn any) {
	e.funcs[name] = fn
}

func (e *Engine) parse(tmpl string) (*template.Template, error) {
	if tmpl == "" {
		return nil, ErrEmpty
	}

	t, err := template.New("excerpt").Funcs(e.funcs).Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return t, nil
}

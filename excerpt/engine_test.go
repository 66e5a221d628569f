package excerpt

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/markupkit/preset"
)

type post struct {
	Title string
	Body  string
}

var hello = post{Title: "Greeting", Body: "<p>Hello world</p>"}

func newStore(t *testing.T) *preset.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.yaml")
	content := "presets:\n  tiny:\n    length: 5\n    appendix: \"...\"\n  inside:\n    length: 5\n    appendix: \"...\"\n    appendix_inside: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store, err := preset.NewStore(path)
	require.NoError(t, err)
	return store
}

func TestEngine_Render_Helpers(t *testing.T) {
	e := NewEngine(WithPresets(newStore(t)))

	tests := []struct {
		name     string
		template string
		data     any
		want     string
	}{
		{
			name:     "plain field",
			template: "<h1>{{.Title}}</h1>",
			data:     hello,
			want:     "<h1>Greeting</h1>",
		},
		{
			name:     "shorten",
			template: "{{shorten .Body 5}}",
			data:     hello,
			want:     "<p>Hello</p>\u2026",
		},
		{
			name:     "shorten leaves short markup alone",
			template: "{{shorten .Body 50}}",
			data:     hello,
			want:     "<p>Hello world</p>",
		},
		{
			name:     "shortenWords",
			template: "{{shortenWords .Body 8}}",
			data:     hello,
			want:     "<p>Hello</p>\u2026",
		},
		{
			name:     "preset",
			template: `{{preset "tiny" .Body}}`,
			data:     hello,
			want:     "<p>Hello</p>...",
		},
		{
			name:     "preset with appendix inside",
			template: `{{preset "inside" .Body}}`,
			data:     hello,
			want:     "<p>Hello...</p>",
		},
		{
			name:     "stripTags",
			template: "{{stripTags .Body}}",
			data:     hello,
			want:     "Hello world",
		},
		{
			name:     "visibleLength",
			template: "{{visibleLength .Body}}",
			data:     hello,
			want:     "11",
		},
		{
			name:     "pipeline",
			template: "{{.Body | stripTags | upper}}",
			data:     hello,
			want:     "HELLO WORLD",
		},
		{
			name:     "lower and trim",
			template: "{{lower (trim .Title)}}",
			data:     post{Title: "  LOUD  "},
			want:     "loud",
		},
		{
			name:     "default for missing key",
			template: `{{default .summary "none"}}`,
			data:     map[string]any{},
			want:     "none",
		},
		{
			name:     "default keeps value",
			template: `{{default .summary "none"}}`,
			data:     map[string]any{"summary": "short"},
			want:     "short",
		},
		{
			name:     "conditional on length",
			template: `{{if gt (visibleLength .Body) 5}}{{shorten .Body 5}}{{else}}{{.Body}}{{end}}`,
			data:     hello,
			want:     "<p>Hello</p>\u2026",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Render(tt.template, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_Render_Errors(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name     string
		template string
		wantErr  error
	}{
		{name: "empty template", template: "", wantErr: ErrEmpty},
		{name: "unclosed action", template: "{{shorten .Body 5", wantErr: ErrParse},
		{name: "unknown function", template: "{{teaser .Body}}", wantErr: ErrParse},
		{name: "missing end", template: "{{if .Body}}open", wantErr: ErrParse},
		{name: "preset without store", template: `{{preset "tiny" .Body}}`, wantErr: ErrPreset},
		{name: "wrong argument type", template: `{{shorten .Body "five"}}`, wantErr: ErrExecute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Render(tt.template, hello)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "error %q should wrap %q", err, tt.wantErr)
		})
	}
}

func TestEngine_Render_UnknownPreset(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	e := NewEngine(WithPresets(newStore(t)), WithLogger(logger))

	_, err := e.Render(`{{preset "huge" .Body}}`, hello)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecute)
	assert.ErrorIs(t, err, ErrPreset)
	assert.ErrorIs(t, err, preset.ErrUnknownPreset)
	assert.Contains(t, logs.String(), "preset=huge")
}

func TestEngine_Validate(t *testing.T) {
	e := NewEngine()

	assert.NoError(t, e.Validate("{{shorten .Body 10}}"))
	assert.ErrorIs(t, e.Validate(""), ErrEmpty)
	assert.ErrorIs(t, e.Validate("{{shorten"), ErrParse)
}

func TestEngine_AddFunc(t *testing.T) {
	e := NewEngine()
	e.AddFunc("byline", func(s string) string { return "by " + s })

	got, err := e.Render("{{byline .Title}}", hello)
	require.NoError(t, err)
	assert.Equal(t, "by Greeting", got)
}

func TestEngine_AddFunc_Overrides(t *testing.T) {
	e := NewEngine()
	e.AddFunc("upper", func(s string) string { return strings.Repeat(s, 2) })

	got, err := e.Render("{{upper .Title}}", hello)
	require.NoError(t, err)
	assert.Equal(t, "GreetingGreeting", got)
}

func TestDefaultValue(t *testing.T) {
	tests := []struct {
		name       string
		val        any
		defaultVal any
		want       any
	}{
		{name: "nil", val: nil, defaultVal: "d", want: "d"},
		{name: "empty string", val: "", defaultVal: "d", want: "d"},
		{name: "non-empty string", val: "v", defaultVal: "d", want: "v"},
		{name: "zero int kept", val: 0, defaultVal: 5, want: 0},
		{name: "false kept", val: false, defaultVal: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultValue(tt.val, tt.defaultVal))
		})
	}
}

func TestEngine_RealWorldTeaser(t *testing.T) {
	e := NewEngine(WithPresets(newStore(t)))

	tmpl := `<article>
<h2>{{.Title}}</h2>
{{shortenWords .Body 29}}
</article>`
	data := post{
		Title: "Release notes",
		Body:  "<p>This release adds <strong>grapheme aware</strong> truncation to every helper.</p>",
	}

	got, err := e.Render(tmpl, data)
	require.NoError(t, err)
	assert.Equal(t, "<article>\n<h2>Release notes</h2>\n<p>This release adds <strong>grapheme</strong></p>\u2026\n</article>", got)
}

package preset

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/markupkit/truncate"
	"github.com/randalmurphal/markupkit/units"
)

// Sentinel errors for preset operations.
var (
	// ErrInvalidPreset is returned when a preset's parameters cannot be used.
	ErrInvalidPreset = errors.New("invalid preset")

	// ErrUnknownPreset is returned when a preset name is not defined.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrFormat is returned for an unsupported or malformed preset file.
	ErrFormat = errors.New("preset file format error")
)

// Preset is a named set of truncation parameters.
type Preset struct {
	// Name is the key the preset was defined under.
	Name string `yaml:"-" toml:"-" json:"-"`

	Length         int    `yaml:"length" toml:"length" json:"length,omitempty" jsonschema:"minimum=0,default=400,description=Visible length in units"`
	Appendix       string `yaml:"appendix" toml:"appendix" json:"appendix,omitempty" jsonschema:"default=…,description=Text marking truncated content"`
	AppendixInside bool   `yaml:"appendix_inside" toml:"appendix_inside" json:"appendix_inside,omitempty" jsonschema:"description=Place the appendix inside the innermost open element"`
	Wordsafe       bool   `yaml:"wordsafe" toml:"wordsafe" json:"wordsafe,omitempty" jsonschema:"description=Cut back to the last delimiter"`
	Delimiter      string `yaml:"delimiter" toml:"delimiter" json:"delimiter,omitempty" jsonschema:"minLength=1,description=Word delimiter for wordsafe truncation"`
	Unit           string `yaml:"unit" toml:"unit" json:"unit,omitempty" jsonschema:"enum=grapheme,enum=rune,description=Unit the length is measured in"`
}

// Default returns the preset every file entry starts from.
func Default() Preset {
	return Preset{
		Length:    truncate.DefaultLength,
		Appendix:  truncate.DefaultAppendix,
		Delimiter: truncate.DefaultDelimiter,
		Unit:      units.UnitGrapheme,
	}
}

// Validate checks that the preset can build a truncator.
func (p Preset) Validate() error {
	if p.Length < 0 {
		return fmt.Errorf("%w: %s: length must not be negative", ErrInvalidPreset, p.Name)
	}
	if _, err := units.Lookup(p.Unit); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidPreset, p.Name, err)
	}
	if p.Wordsafe && p.Delimiter == "" {
		return fmt.Errorf("%w: %s: %w: wordsafe requires a delimiter", ErrInvalidPreset, p.Name, truncate.ErrInvalidArgument)
	}
	return nil
}

// Options converts the preset to truncation options.
func (p Preset) Options() (truncate.Options, error) {
	if err := p.Validate(); err != nil {
		return truncate.Options{}, err
	}
	counter, _ := units.Lookup(p.Unit)
	return truncate.Options{
		Appendix:       p.Appendix,
		AppendixInside: p.AppendixInside,
		Wordsafe:       p.Wordsafe,
		Delimiter:      p.Delimiter,
		Counter:        counter,
	}, nil
}

// Truncator builds a truncator configured by the preset.
func (p Preset) Truncator() (*truncate.Truncator, error) {
	opts, err := p.Options()
	if err != nil {
		return nil, err
	}
	return truncate.NewWithOptions(opts), nil
}

// Apply truncates markup to the preset's length.
func (p Preset) Apply(markup string) (string, error) {
	tr, err := p.Truncator()
	if err != nil {
		return "", err
	}
	return tr.Truncate(markup, p.Length)
}

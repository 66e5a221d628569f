package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/randalmurphal/markupkit/preset"
	"github.com/randalmurphal/markupkit/truncate"
	"github.com/randalmurphal/markupkit/units"
)

var errNoPresetFile = errors.New("--preset requires --presets")

func newRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "shorten [file]",
		Short:         "Truncate markup to a visible length, keeping tags balanced",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), v.GetString("log-level"))
			if err != nil {
				return err
			}

			input, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			p, err := resolvePreset(v, logger)
			if err != nil {
				return err
			}

			tr, err := p.Truncator()
			if err != nil {
				return err
			}
			out, err := tr.WithLogger(logger).Truncate(input, p.Length)
			if err != nil {
				return err
			}

			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	flags := cmd.PersistentFlags()
	flags.IntP("length", "n", truncate.DefaultLength, "visible length of the result")
	flags.String("appendix", truncate.DefaultAppendix, "text appended when markup is cut")
	flags.Bool("inside", false, "place the appendix inside the innermost open element")
	flags.Bool("wordsafe", false, "cut back to the last delimiter so no word is split")
	flags.String("delimiter", truncate.DefaultDelimiter, "word delimiter for --wordsafe")
	flags.String("unit", units.UnitGrapheme, `length unit, "grapheme" or "rune"`)
	flags.String("presets", "", "preset file (.yaml, .toml or .json)")
	flags.String("preset", "", "name of the preset to apply; flags that are set override it")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")

	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	v.SetEnvPrefix("shorten")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.AddCommand(newSchemaCmd(), newListPresetsCmd(v))
	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of preset files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := preset.Schema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func newListPresetsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "list-presets",
		Short: "List the presets defined in --presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := v.GetString("presets")
			if path == "" {
				return errors.New("--presets is required")
			}
			logger, err := newLogger(cmd.ErrOrStderr(), v.GetString("log-level"))
			if err != nil {
				return err
			}
			store, err := preset.NewStore(path, preset.WithLogger(logger))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, name := range store.Names() {
				p, _ := store.Get(name)
				fmt.Fprintf(w, "%s\tlength=%d unit=%s wordsafe=%t inside=%t\n",
					name, p.Length, p.Unit, p.Wordsafe, p.AppendixInside)
			}
			return nil
		},
	}
}

// resolvePreset builds the effective parameters: the named preset, or the
// defaults, with every explicitly set flag or environment variable on top.
func resolvePreset(v *viper.Viper, logger *slog.Logger) (preset.Preset, error) {
	p := preset.Default()
	p.Name = "flags"
	fromPreset := false

	if name := v.GetString("preset"); name != "" {
		path := v.GetString("presets")
		if path == "" {
			return preset.Preset{}, errNoPresetFile
		}
		store, err := preset.NewStore(path, preset.WithLogger(logger))
		if err != nil {
			return preset.Preset{}, err
		}
		named, ok := store.Get(name)
		if !ok {
			return preset.Preset{}, fmt.Errorf("%w: %s", preset.ErrUnknownPreset, name)
		}
		p = named
		fromPreset = true
		logger.Debug("using preset", slog.String("preset", name), slog.String("path", path))
	}

	override := func(key string) bool { return !fromPreset || v.IsSet(key) }
	if override("length") {
		p.Length = v.GetInt("length")
	}
	if override("appendix") {
		p.Appendix = v.GetString("appendix")
	}
	if override("inside") {
		p.AppendixInside = v.GetBool("inside")
	}
	if override("wordsafe") {
		p.Wordsafe = v.GetBool("wordsafe")
	}
	if override("delimiter") {
		p.Delimiter = v.GetString("delimiter")
	}
	if override("unit") {
		p.Unit = v.GetString("unit")
	}

	if err := p.Validate(); err != nil {
		return preset.Preset{}, err
	}
	return p, nil
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

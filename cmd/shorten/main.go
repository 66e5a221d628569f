// Command shorten truncates HTML or XML markup to a visible length while
// keeping tags balanced.
//
// Usage:
//
//	shorten [file] [flags]
//	shorten schema
//	shorten list-presets --presets presets.yaml
//
// Markup is read from file, or stdin when no file is given. Every flag can
// also be set through an environment variable with the SHORTEN_ prefix,
// for example SHORTEN_LENGTH=120.
package main

import (
	"os"

	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

// Package config builds the run parameters from positional arguments and
// the process environment.
package config

import (
	"os"

	"minigrep/internal/model"
)

// IgnoreCaseEnv enables case-insensitive search when present, whatever its value.
const IgnoreCaseEnv = "IGNORE_CASE"

// LookupFunc reports the value of an environment variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// OSLookup reads the real process environment.
var OSLookup LookupFunc = os.LookupEnv

// Build assembles a Config from the meaningful positional arguments
// (query, then file path). The program name must already be stripped.
// Extra arguments are ignored.
func Build(args []string, lookup LookupFunc) (model.Config, error) {
	if len(args) < 1 {
		return model.Config{}, &model.MissingArgumentError{Name: "query string"}
	}
	if len(args) < 2 {
		return model.Config{}, &model.MissingArgumentError{Name: "file path"}
	}

	if lookup == nil {
		lookup = OSLookup
	}
	_, ignoreCase := lookup(IgnoreCaseEnv)

	return model.Config{
		Query:      args[0],
		FilePath:   args[1],
		IgnoreCase: ignoreCase,
	}, nil
}

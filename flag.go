// Copyright 2021 Jonathan Amsterdam.

package clidef

import "strings"

// A Flag is a boolean switch, such as "-f, --force".
// A Flag is immutable once created.
type Flag struct {
	names
}

// FlagConfig holds optional settings for a Flag.
type FlagConfig struct {
	// Name overrides the identifier under which the flag is reported.
	Name string
}

// NewFlag compiles a flag definition. A definition is one or more short
// (-x) or long (--name) forms separated by commas, pipes or spaces, for
// example "-f, --force" or "-v|--verbose". A flag takes no value, so any
// text after the last name is an error.
// The cfg argument may be nil.
func NewFlag(definition, usage string, cfg *FlagConfig) (*Flag, error) {
	shorts, longs, rest, err := parseNames("flag", definition)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rest) != "" {
		return nil, parseErrorf(definition, "flags do not support values: %q", definition)
	}
	var override string
	if cfg != nil {
		override = cfg.Name
	}
	return &Flag{names{
		shorts: shorts,
		longs:  longs,
		id:     defaultIdentifier(override, shorts, longs),
		usage:  usage,
	}}, nil
}

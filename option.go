// Copyright 2021 Jonathan Amsterdam.

package clidef

// An Option is a named value, such as "-o, --output <dir>".
// An Option is immutable once created.
type Option struct {
	names
	valueName     string
	valueRequired bool
	multi         bool
	def           Value
}

// OptionConfig holds optional settings for an Option.
type OptionConfig struct {
	// Name overrides the identifier under which the option is reported.
	Name string
	// Default is the value reported when the option is absent.
	Default string
	// DefaultList is the value reported when a Multi option is absent.
	DefaultList []string
	// Multi options accumulate every value given on the command line.
	Multi bool
}

// NewOption compiles an option definition: the names of a flag followed by
// a value placeholder, either <name> for a value that must be given or
// [name] for one that may be omitted.
// The cfg argument may be nil.
func NewOption(definition, usage string, cfg *OptionConfig) (*Option, error) {
	shorts, longs, rest, err := parseNames("option", definition)
	if err != nil {
		return nil, err
	}
	valueName, required, ok := parsePlaceholder(rest)
	if !ok {
		return nil, parseErrorf(definition, "could not find option value name in %q", definition)
	}
	if cfg == nil {
		cfg = &OptionConfig{}
	}
	o := &Option{
		names: names{
			shorts: shorts,
			longs:  longs,
			id:     defaultIdentifier(cfg.Name, shorts, longs),
			usage:  usage,
		},
		valueName:     valueName,
		valueRequired: required,
		multi:         cfg.Multi,
	}
	if cfg.Multi {
		o.def = Value{List: append([]string(nil), cfg.DefaultList...)}
	} else {
		o.def = Value{Str: cfg.Default}
	}
	return o, nil
}

func (o *Option) ValueName() string { return o.valueName }

// ValueRequired reports whether the option must be followed by a value.
func (o *Option) ValueRequired() bool { return o.valueRequired }

func (o *Option) Multi() bool { return o.multi }

// Default returns the value reported when the option is absent.
func (o *Option) Default() Value { return o.def.clone() }

func (o *Option) String() string {
	if o.valueRequired {
		return o.names.String() + " <" + o.valueName + ">"
	}
	return o.names.String() + " [" + o.valueName + "]"
}

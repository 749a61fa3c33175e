// Copyright 2021 Jonathan Amsterdam.

package clidef

import (
	"regexp"
	"strings"
)

var (
	argumentRegexp    = regexp.MustCompile(`^<([^<>]+)>$|^\[([^[\]]+)\]$`)
	variadicRegexp    = regexp.MustCompile(`\s?\.{3}$`)
	placeholderFinder = regexp.MustCompile(`<[^<>]+>|\[[^[\]]+\]`)
)

// An Argument is a positional argument: <name> if it is required, [name] if
// it is optional. A trailing "..." makes it variadic, collecting all the
// remaining positional tokens.
type Argument struct {
	name     string
	id       string
	required bool
	variadic bool
	usage    string
}

// NewArgument compiles a single argument definition, such as "<src>" or
// "[files...]". The definition must consist of the placeholder alone.
func NewArgument(definition, usage string) (*Argument, error) {
	m := argumentRegexp.FindStringSubmatch(definition)
	if m == nil {
		return nil, parseErrorf(definition, "invalid argument definition %q", definition)
	}
	required := m[1] != ""
	name := m[1]
	if !required {
		name = m[2]
	}
	name = strings.TrimSpace(name)
	variadic := false
	if loc := variadicRegexp.FindStringIndex(name); loc != nil {
		variadic = true
		name = name[:loc[0]]
	}
	if strings.TrimSpace(name) == "" {
		return nil, parseErrorf(definition, "argument name is empty in %q", definition)
	}
	return &Argument{
		name:     name,
		id:       identifier(name),
		required: required,
		variadic: variadic,
		usage:    usage,
	}, nil
}

// Name returns the name as written in the definition.
func (a *Argument) Name() string { return a.name }

// Identifier returns the name under which the value is reported in a Context.
func (a *Argument) Identifier() string { return a.id }

func (a *Argument) Required() bool { return a.required }
func (a *Argument) Variadic() bool { return a.variadic }
func (a *Argument) Usage() string  { return a.usage }

func (a *Argument) String() string {
	s := a.name
	if a.variadic {
		s += " ..."
	}
	if a.required {
		return "<" + s + ">"
	}
	return "[" + s + "]"
}

// whitespaceDelim separates two arguments that are matched against
// separate command-line tokens.
const whitespaceDelim = " "

// An ArgumentSet is the ordered list of positional arguments of a command.
// Adjacent arguments are joined by a delimiter: either whitespace, meaning
// they come from separate tokens, or a literal string such as ".." that
// splits a single token, as in "<from>..<to>".
type ArgumentSet struct {
	args   []*Argument
	delims []string // delims[i] joins args[i] and args[i+1]
}

// NewArgumentSet compiles a full argument definition, such as
// "<src> <dest>", "<from>..<to>" or "<cmd> [args...]".
//
// A variadic argument must come last, and there may be only one.
// Identifiers must be unique. Arguments joined by a literal delimiter must
// be both required or both optional.
func NewArgumentSet(definition string) (*ArgumentSet, error) {
	s := &ArgumentSet{}
	seen := map[string]bool{}
	prevEnd := -1
	for _, loc := range placeholderFinder.FindAllStringIndex(definition, -1) {
		arg, err := NewArgument(definition[loc[0]:loc[1]], "")
		if err != nil {
			return nil, err
		}
		if n := len(s.args); n > 0 {
			last := s.args[n-1]
			if last.variadic {
				if arg.variadic {
					return nil, parseErrorf(definition, "argument set can only have one variadic argument: %q", definition)
				}
				return nil, parseErrorf(definition, "variadic argument must come last: %q", definition)
			}
			delim := definition[prevEnd:loc[0]]
			switch {
			case delim == "":
				return nil, parseErrorf(definition, "arguments %s and %s must be separated: %q", last, arg, definition)
			case strings.TrimSpace(delim) == "":
				delim = whitespaceDelim
			case last.required != arg.required:
				return nil, parseErrorf(definition,
					"arguments separated with custom delimiters must both be required or both be optional: %q", definition)
			}
			s.delims = append(s.delims, delim)
		}
		if seen[arg.id] {
			return nil, parseErrorf(definition, "argument set contains duplicate argument %q: %q", arg.name, definition)
		}
		seen[arg.id] = true
		s.args = append(s.args, arg)
		prevEnd = loc[1]
	}
	return s, nil
}

// Arguments returns the arguments in the order they were defined.
func (s *ArgumentSet) Arguments() []*Argument {
	if s == nil {
		return nil
	}
	return append([]*Argument(nil), s.args...)
}

// Delimiters returns the delimiters between adjacent arguments.
// A single space stands for any run of whitespace.
func (s *ArgumentSet) Delimiters() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.delims...)
}

func (s *ArgumentSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.args)
}

func (s *ArgumentSet) String() string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	for i, a := range s.args {
		if i > 0 {
			b.WriteString(s.delims[i-1])
		}
		b.WriteString(a.String())
	}
	return b.String()
}

// group returns the arguments starting at index i that are chained by literal
// delimiters, and so must all be filled from one token, along with the
// delimiters between them. The chain ends at the first whitespace delimiter.
func (s *ArgumentSet) group(i int) ([]*Argument, []string) {
	j := i
	for j < len(s.delims) && s.delims[j] != whitespaceDelim {
		j++
	}
	return s.args[i : j+1], s.delims[i:j]
}

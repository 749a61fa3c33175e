// Copyright 2021 Jonathan Amsterdam.

package clidef

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// The grammar shared by flag and option definitions.

var (
	// A short name is a dash and one character; a long name is two dashes and
	// a run of characters. Names are separated by commas, pipes or spaces.
	nameRegexp = regexp.MustCompile(`-([^-\s|,])|--([^\s|,]+)`)

	// The value placeholder of an option: [optional], <required> or a bare word.
	placeholderRegexp = regexp.MustCompile(`\[([^[\]]*)\]|<([^<>]*)>|(\S+)`)

	wordSeparator = regexp.MustCompile(`[\s-]+`)
)

// parseNames extracts the short and long names from a flag or option
// definition. It returns the text that follows the last name.
// Names are only looked for before the first placeholder bracket, so that a
// placeholder like <dir-name> does not contribute a short name.
// Values are never attached with "=", so a definition like "--output=<dir>"
// is an error.
func parseNames(kind, def string) (shorts, longs []string, rest string, err error) {
	head := def
	if i := strings.IndexAny(def, "<["); i >= 0 {
		head = def[:i]
	}
	end := -1
	for _, m := range nameRegexp.FindAllStringSubmatchIndex(head, -1) {
		if m[2] >= 0 {
			shorts = append(shorts, head[m[2]:m[3]])
		} else {
			longs = append(longs, head[m[4]:m[5]])
		}
		end = m[1]
	}
	if end < 0 {
		return nil, nil, "", parseErrorf(def, "could not find %s name in %q", kind, def)
	}
	if strings.Contains(head, "=") {
		return nil, nil, "", parseErrorf(def, "%s names cannot contain '=': %q", kind, def)
	}
	return shorts, longs, def[end:], nil
}

// parsePlaceholder finds the value placeholder in the text following the names
// of an option. A bare word counts as a required value.
func parsePlaceholder(rest string) (name string, required, ok bool) {
	m := placeholderRegexp.FindStringSubmatchIndex(rest)
	switch {
	case m == nil:
		return "", false, false
	case m[2] >= 0:
		return rest[m[2]:m[3]], false, true
	case m[4] >= 0:
		return rest[m[4]:m[5]], true, true
	default:
		return rest[m[6]:m[7]], true, true
	}
}

// identifier derives the name under which a value is reported:
// "dry-run" and "dry run" both become "dryRun". Words are separated only by
// hyphens and whitespace; the first letter of each word after the first is
// upper-cased and nothing else changes, so "max-ID" becomes "maxID".
func identifier(name string) string {
	var b strings.Builder
	for i, w := range wordSeparator.Split(name, -1) {
		if i == 0 || w == "" {
			b.WriteString(w)
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(w[size:])
	}
	return b.String()
}

// defaultIdentifier returns override if it is set, otherwise the identifier
// of the first long name, otherwise the first short name.
func defaultIdentifier(override string, shorts, longs []string) string {
	switch {
	case override != "":
		return override
	case len(longs) > 0:
		return identifier(longs[0])
	default:
		return shorts[0]
	}
}

// names is the part of a flag or option common to both.
type names struct {
	shorts []string
	longs  []string
	id     string
	usage  string
}

func (n *names) ShortNames() []string { return append([]string(nil), n.shorts...) }
func (n *names) LongNames() []string  { return append([]string(nil), n.longs...) }

// Name returns the identifier under which the value is reported in a Context.
func (n *names) Name() string { return n.id }

func (n *names) Usage() string { return n.usage }

func (n *names) all() []string {
	return append(append([]string(nil), n.shorts...), n.longs...)
}

func (n *names) String() string {
	var parts []string
	for _, s := range n.shorts {
		parts = append(parts, "-"+s)
	}
	for _, l := range n.longs {
		parts = append(parts, "--"+l)
	}
	return strings.Join(parts, ", ")
}

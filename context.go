// Copyright 2021 Jonathan Amsterdam.

package clidef

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// A Value is the outcome of matching an option or positional argument.
type Value struct {
	// Present reports whether the command line supplied the value.
	Present bool
	// Str is the value of a single-valued option or argument.
	Str string
	// List holds the values of a multi option or variadic argument.
	List []string
}

func (v Value) clone() Value {
	if v.List != nil {
		v.List = append([]string(nil), v.List...)
	}
	return v
}

// Flags maps flag identifiers to whether the flag was given.
// The zero Flags is empty.
type Flags struct {
	m *orderedmap.OrderedMap[string, bool]
}

// Get reports whether the flag with the given identifier was given.
// The second result is false if no such flag is declared.
func (f Flags) Get(id string) (set, ok bool) {
	if f.m == nil {
		return false, false
	}
	return f.m.Get(id)
}

// Names returns the flag identifiers in declaration order.
func (f Flags) Names() []string {
	return keys(f.m)
}

func (f Flags) Len() int {
	if f.m == nil {
		return 0
	}
	return f.m.Len()
}

// Map returns a copy of f as a map.
func (f Flags) Map() map[string]bool {
	m := map[string]bool{}
	if f.m != nil {
		for p := f.m.Oldest(); p != nil; p = p.Next() {
			m[p.Key] = p.Value
		}
	}
	return m
}

// Values maps option or argument identifiers to their values.
// The zero Values is empty.
type Values struct {
	m *orderedmap.OrderedMap[string, Value]
}

// Get returns the value with the given identifier.
// The second result is false if no such option or argument is declared.
func (v Values) Get(id string) (Value, bool) {
	if v.m == nil {
		return Value{}, false
	}
	val, ok := v.m.Get(id)
	return val.clone(), ok
}

// Names returns the identifiers in declaration order.
func (v Values) Names() []string {
	return keys(v.m)
}

func (v Values) Len() int {
	if v.m == nil {
		return 0
	}
	return v.m.Len()
}

// Map returns a copy of v as a map.
func (v Values) Map() map[string]Value {
	m := map[string]Value{}
	if v.m != nil {
		for p := v.m.Oldest(); p != nil; p = p.Next() {
			m[p.Key] = p.Value.clone()
		}
	}
	return m
}

func keys[V any](m *orderedmap.OrderedMap[string, V]) []string {
	if m == nil {
		return nil
	}
	ks := make([]string, 0, m.Len())
	for p := m.Oldest(); p != nil; p = p.Next() {
		ks = append(ks, p.Key)
	}
	return ks
}

// A Context is the result of matching a command line against a command's
// flags, options and arguments. It does not change after it is created.
type Context struct {
	cmd     *Command
	flags   Flags
	options Values
	args    Values
}

// Command returns the command whose definitions produced c.
// It is nil for a Context returned by Match.
func (c *Context) Command() *Command { return c.cmd }

func (c *Context) Flags() Flags    { return c.flags }
func (c *Context) Options() Values { return c.options }
func (c *Context) Args() Values    { return c.args }

// Flag reports whether the flag with the given identifier was given.
func (c *Context) Flag(id string) bool {
	set, _ := c.flags.Get(id)
	return set
}

// Option returns the value of the option with the given identifier. If the
// option was absent, the value is its default.
func (c *Context) Option(id string) Value {
	v, _ := c.options.Get(id)
	return v
}

// Arg returns the value of the positional argument with the given
// identifier. Absent arguments have no default.
func (c *Context) Arg(id string) Value {
	v, _ := c.args.Get(id)
	return v
}

// Match matches argv against the given flags, options and arguments.
// Any of them may be nil. It returns a *ParseError if argv does not fit, or
// if two of the flags and options share a name or an identifier.
func Match(flags []*Flag, options []*Option, args *ArgumentSet, argv []string) (*Context, error) {
	for i, f := range flags {
		if err := checkNames(flags[:i], nil, &f.names); err != nil {
			return nil, err
		}
	}
	for i, o := range options {
		if err := checkNames(flags, options[:i], &o.names); err != nil {
			return nil, err
		}
	}
	return match(flags, options, args, argv)
}

// checkNames reports an error if a name or identifier of n is already used by
// one of flags or options.
func checkNames(flags []*Flag, options []*Option, n *names) error {
	used := map[string]bool{}
	ids := map[string]bool{}
	for _, f := range flags {
		ids[f.id] = true
		for _, s := range f.all() {
			used[s] = true
		}
	}
	for _, o := range options {
		ids[o.id] = true
		for _, s := range o.all() {
			used[s] = true
		}
	}
	for _, s := range n.all() {
		if used[s] {
			return parseErrorf(s, "duplicate flag or option name %q", s)
		}
	}
	if ids[n.id] {
		return parseErrorf(n.id, "duplicate flag or option identifier %q", n.id)
	}
	return nil
}

// A lookupEntry is what a flag or option name refers to: exactly one of
// flag and opt is set.
type lookupEntry struct {
	flag *Flag
	opt  *Option
}

// matchState is the state of one pass over an argument vector.
type matchState struct {
	lookup       map[string]lookupEntry
	argsOnly     bool    // a "--" has been seen
	pendingOpt   *Option // option waiting for its value
	pendingToken string  // the token that named pendingOpt
	argumentSet  *ArgumentSet
	cursor       int       // index of the next unfilled argument
	variadic     *Argument // once set, collects every remaining positional token
	flagValues   map[string]bool
	optionValues map[string]Value
	argValues    map[string]Value
}

func match(flags []*Flag, options []*Option, set *ArgumentSet, argv []string) (*Context, error) {
	st := &matchState{
		lookup:       map[string]lookupEntry{},
		flagValues:   map[string]bool{},
		optionValues: map[string]Value{},
		argValues:    map[string]Value{},
		argumentSet:  set,
	}
	for _, o := range options {
		for _, n := range o.all() {
			st.lookup[n] = lookupEntry{opt: o}
		}
	}
	for _, f := range flags {
		for _, n := range f.all() {
			st.lookup[n] = lookupEntry{flag: f}
		}
	}
	for _, tok := range argv {
		if err := st.token(tok); err != nil {
			return nil, err
		}
	}
	if st.pendingOpt != nil && st.pendingOpt.valueRequired {
		return nil, parseErrorf(st.pendingToken, "value required for option %q", st.pendingToken)
	}
	return st.context(flags, options, set), nil
}

func (st *matchState) token(tok string) error {
	if !st.argsOnly {
		if tok == "--" {
			st.argsOnly = true
			return nil
		}
		if len(tok) > 1 && tok[0] == '-' {
			return st.optionToken(tok)
		}
	}
	if o := st.pendingOpt; o != nil {
		if o.multi {
			v := st.optionValues[o.id]
			v.List = append(v.List, tok)
			st.optionValues[o.id] = v
		} else {
			st.optionValues[o.id] = Value{Str: tok}
		}
		st.pendingOpt, st.pendingToken = nil, ""
		return nil
	}
	if a := st.variadic; a != nil {
		v := st.argValues[a.id]
		v.List = append(v.List, tok)
		st.argValues[a.id] = v
		return nil
	}
	return st.positional(tok)
}

// optionToken handles a token that starts with a dash: a long name, or one
// or more bundled short names.
func (st *matchState) optionToken(tok string) error {
	if st.pendingOpt != nil {
		if st.pendingOpt.valueRequired {
			return parseErrorf(st.pendingToken, "value required for option %q", st.pendingToken)
		}
		// An optional value was not given. The option is reported absent.
		st.pendingOpt, st.pendingToken = nil, ""
	}
	var refs []string
	if strings.HasPrefix(tok, "--") {
		refs = []string{tok[2:]}
	} else {
		for _, r := range tok[1:] {
			refs = append(refs, string(r))
		}
	}
	for _, name := range refs {
		e, ok := st.lookup[name]
		switch {
		case !ok:
			return parseErrorf(tok, "unrecognised option %q", tok)
		case e.opt == nil:
			st.flagValues[e.flag.id] = true
		case st.pendingOpt != nil:
			return parseErrorf(tok,
				"cannot use shorthand for multiple options that require values: %q, %q", name, st.pendingToken)
		default:
			st.pendingOpt, st.pendingToken = e.opt, tok
		}
	}
	return nil
}

// positional fills the next group of arguments from tok.
func (st *matchState) positional(tok string) error {
	if st.cursor >= st.argumentSet.Len() {
		return parseErrorf(tok, "superfluous argument %q", tok)
	}
	args, delims := st.argumentSet.group(st.cursor)
	st.cursor += len(args)
	frag := tok
	for i, d := range delims {
		j := strings.Index(frag, d)
		if j < 0 {
			return parseErrorf(tok, "arguments in invalid format: expected %s, received %q", groupPattern(args, delims), tok)
		}
		st.argValues[args[i].id] = Value{Str: frag[:j]}
		frag = frag[j+len(d):]
	}
	last := args[len(args)-1]
	if last.variadic {
		st.variadic = last
		st.argValues[last.id] = Value{List: []string{frag}}
	} else {
		st.argValues[last.id] = Value{Str: frag}
	}
	return nil
}

func groupPattern(args []*Argument, delims []string) string {
	var b strings.Builder
	for i, a := range args {
		if i > 0 {
			b.WriteString(delims[i-1])
		}
		b.WriteString(a.String())
	}
	return b.String()
}

// context seals the values collected by the pass. Every declared identifier
// is present in the result.
func (st *matchState) context(flags []*Flag, options []*Option, set *ArgumentSet) *Context {
	fm := orderedmap.New[string, bool]()
	for _, f := range flags {
		fm.Set(f.id, st.flagValues[f.id])
	}
	om := orderedmap.New[string, Value]()
	for _, o := range options {
		if v, ok := st.optionValues[o.id]; ok {
			v.Present = true
			om.Set(o.id, v)
		} else {
			om.Set(o.id, o.def.clone())
		}
	}
	am := orderedmap.New[string, Value]()
	for _, a := range set.Arguments() {
		v, ok := st.argValues[a.id]
		v.Present = ok
		am.Set(a.id, v)
	}
	return &Context{
		flags:   Flags{fm},
		options: Values{om},
		args:    Values{am},
	}
}

// Copyright 2021 Jonathan Amsterdam.

package clidef

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// A Command is a node in a tree of commands. It owns the definitions of its
// flags, options and positional arguments, and a chain of handlers that run
// when it is invoked.
//
// Commands are built with the methods below, usually at program startup.
// A malformed definition is a programming error, so those methods panic
// instead of returning an error. Use NewFlag, NewOption and NewArgumentSet
// directly to check definitions without panicking.
type Command struct {
	name     string
	usage    string
	aliases  []string
	flags    []*Flag
	options  []*Option
	args     *ArgumentSet
	handlers []Handler
	super    *Command
	subs     []*Command
	out      io.Writer
	logger   *slog.Logger
}

// New returns a top-level command.
func New(name, usage string) *Command {
	return &Command{name: name, usage: strings.TrimSpace(usage)}
}

func (c *Command) Name() string { return c.name }

// Command registers a sub-command of c and returns it. If init is not nil,
// it is called with the new command.
func (c *Command) Command(name, usage string, init func(*Command)) *Command {
	if c.findSub(name) != nil {
		c.fail(fmt.Errorf("duplicate sub-command: %q", name))
	}
	sub := &Command{name: name, usage: strings.TrimSpace(usage), super: c}
	c.subs = append(c.subs, sub)
	if init != nil {
		init(sub)
	}
	return sub
}

// Alias adds alternative names by which c can be invoked.
func (c *Command) Alias(names ...string) *Command {
	c.aliases = append(c.aliases, names...)
	return c
}

// Flag adds a flag, as described by NewFlag. The cfg argument may be nil.
func (c *Command) Flag(definition, usage string, cfg *FlagConfig) *Command {
	f, err := NewFlag(definition, usage, cfg)
	if err != nil {
		c.fail(err)
	}
	return c.AddFlag(f)
}

// AddFlag adds a compiled flag.
func (c *Command) AddFlag(f *Flag) *Command {
	if err := c.checkNames(&f.names); err != nil {
		c.fail(err)
	}
	c.flags = append(c.flags, f)
	return c
}

// Option adds an option, as described by NewOption. The cfg argument may be
// nil.
func (c *Command) Option(definition, usage string, cfg *OptionConfig) *Command {
	o, err := NewOption(definition, usage, cfg)
	if err != nil {
		c.fail(err)
	}
	return c.AddOption(o)
}

// AddOption adds a compiled option.
func (c *Command) AddOption(o *Option) *Command {
	if err := c.checkNames(&o.names); err != nil {
		c.fail(err)
	}
	c.options = append(c.options, o)
	return c
}

// Arguments sets the positional arguments, as described by NewArgumentSet.
func (c *Command) Arguments(definition string) *Command {
	s, err := NewArgumentSet(definition)
	if err != nil {
		c.fail(err)
	}
	c.args = s
	return c
}

// Handle appends hs to the handlers of c.
func (c *Command) Handle(hs ...Handler) *Command {
	c.handlers = append(c.handlers, hs...)
	return c
}

// SetOutput sets the destination for usage messages of c and the commands
// below it. If w is nil, os.Stdout is used.
func (c *Command) SetOutput(w io.Writer) *Command {
	c.out = w
	return c
}

// SetLogger sets the logger for c and the commands below it.
// By default nothing is logged.
func (c *Command) SetLogger(l *slog.Logger) *Command {
	c.logger = l
	return c
}

func (c *Command) output() io.Writer {
	for x := c; x != nil; x = x.super {
		if x.out != nil {
			return x.out
		}
	}
	return os.Stdout
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func (c *Command) log() *slog.Logger {
	for x := c; x != nil; x = x.super {
		if x.logger != nil {
			return x.logger
		}
	}
	return discardLogger
}

func (c *Command) fail(err error) {
	panic(fmt.Errorf("command %q: %w", c.fullName(), err))
}

func (c *Command) checkNames(n *names) error {
	return checkNames(c.flags, c.options, n)
}

func (c *Command) findSub(name string) *Command {
	for _, s := range c.subs {
		if s.name == name {
			return s
		}
		for _, a := range s.aliases {
			if a == name {
				return s
			}
		}
	}
	return nil
}

// validate checks the tree rooted at c for problems that cannot be detected
// while it is being built.
func (c *Command) validate() error {
	var result *multierror.Error
	var walk func(*Command)
	walk = func(c *Command) {
		if len(c.handlers) == 0 && len(c.subs) == 0 {
			result = multierror.Append(result, fmt.Errorf("%s has no handlers and no sub-commands", c.fullName()))
		}
		seen := map[string]bool{}
		for _, s := range c.subs {
			for _, n := range append([]string{s.name}, s.aliases...) {
				if seen[n] {
					result = multierror.Append(result, fmt.Errorf("%s: duplicate sub-command name or alias %q", c.fullName(), n))
				}
				seen[n] = true
			}
			walk(s)
		}
	}
	walk(c)
	return result.ErrorOrNil()
}

func (c *Command) fullName() string {
	if c.super == nil {
		return c.name
	}
	return c.super.fullName() + " " + c.name
}

// Usage writes a description of c and its flags, options, arguments and
// sub-commands to w.
func (c *Command) Usage(w io.Writer) {
	name := c.fullName()
	nFlags := len(c.flags) + len(c.options)
	if nFlags > 0 || c.args.Len() > 0 {
		fmt.Fprintf(w, "Usage: %s", name)
		if nFlags > 0 {
			fmt.Fprint(w, " [options]")
		}
		if c.args.Len() > 0 {
			fmt.Fprintf(w, " %s", c.args)
		}
		fmt.Fprintln(w)
		if len(c.subs) > 0 {
			fmt.Fprintln(w, "or")
		}
	}
	if len(c.subs) > 0 {
		fmt.Fprintf(w, "Usage: %s [command]\n", name)
	}
	if len(c.aliases) > 0 {
		fmt.Fprintf(w, "Aliases: %s\n", strings.Join(c.aliases, ", "))
	}
	if c.usage != "" {
		fmt.Fprintln(w, c.usage)
	}

	type row struct{ name, usage string }
	var opts, cmds []row
	for _, f := range c.flags {
		opts = append(opts, row{f.String(), f.usage})
	}
	for _, o := range c.options {
		opts = append(opts, row{o.String(), o.usage})
	}
	for _, s := range c.subs {
		cmds = append(cmds, row{strings.Join(append([]string{s.name}, s.aliases...), ", "), s.usage})
	}
	width := 0
	for _, r := range append(opts, cmds...) {
		if len(r.name) > width {
			width = len(r.name)
		}
	}
	section := func(title string, rows []row) {
		if len(rows) == 0 {
			return
		}
		fmt.Fprintf(w, "\n%s:\n", title)
		for _, r := range rows {
			if r.usage == "" {
				fmt.Fprintf(w, "  %s\n", r.name)
			} else {
				fmt.Fprintf(w, "  %-*s  %s\n", width, r.name, r.usage)
			}
		}
	}
	section("Options", opts)
	section("Commands", cmds)
}

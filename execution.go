// Copyright 2021 Jonathan Amsterdam.

package clidef

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/shlex"
)

// Code for running commands.

// A Handler runs when its command is invoked. Handlers run in the order they
// were added; the first error stops the chain. Returning ErrStop stops the
// chain without failing the command.
type Handler func(ctx context.Context, c *Context) error

// Main runs c with the process's command-line arguments and returns an exit
// code: 0 on success, 2 if the command line was invalid and 1 for any other
// failure. Errors are printed to standard error.
//
// The entire main function of a program can be
//
//	func main() {
//	  os.Exit(top.Main(context.Background()))
//	}
func (c *Command) Main(ctx context.Context) int {
	return c.mainWithArgs(ctx, os.Args[1:])
}

func (c *Command) mainWithArgs(ctx context.Context, args []string) int {
	err := c.Run(ctx, args)
	if err == nil {
		return 0
	}
	fmt.Fprintln(os.Stderr, err)
	var (
		uerr *UsageError
		perr *ParseError
	)
	if errors.As(err, &uerr) || errors.As(err, &perr) {
		return 2
	}
	return 1
}

// Run invokes c with the given arguments, which should not include the
// program name. If the first argument names a sub-command, or one of its
// aliases, that sub-command is run with the remaining arguments instead.
func (c *Command) Run(ctx context.Context, args []string) error {
	if err := c.validate(); err != nil {
		return err
	}
	return c.run(ctx, args)
}

// RunString splits line into arguments the way a POSIX shell would, then
// calls Run.
func (c *Command) RunString(ctx context.Context, line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("%q: %w", line, err)
	}
	return c.Run(ctx, args)
}

func (c *Command) run(ctx context.Context, args []string) error {
	if len(args) > 0 {
		if sub := c.findSub(args[0]); sub != nil {
			return sub.run(ctx, args[1:])
		}
	}
	if len(c.handlers) == 0 {
		if len(args) == 0 {
			return &UsageError{c, errors.New("missing sub-command")}
		}
		return &UsageError{c, fmt.Errorf("unknown command: %q", args[0])}
	}
	pctx, err := c.Parse(args)
	if err != nil {
		return &UsageError{c, err}
	}
	log := c.log().With(slog.String("command", c.fullName()))
	log.DebugContext(ctx, "running",
		slog.Int("flags", pctx.flags.Len()),
		slog.Int("options", pctx.options.Len()),
		slog.Int("args", pctx.args.Len()))
	for i, h := range c.handlers {
		if err := h(ctx, pctx); err != nil {
			if errors.Is(err, ErrStop) {
				log.DebugContext(ctx, "handler chain stopped", slog.Int("handler", i))
				return nil
			}
			return err
		}
	}
	return nil
}

// Parse matches args against the flags, options and arguments of c.
// Sub-commands are not considered.
func (c *Command) Parse(args []string) (*Context, error) {
	pctx, err := match(c.flags, c.options, c.args, args)
	if err != nil {
		return nil, err
	}
	pctx.cmd = c
	return pctx, nil
}

// helpID is the identifier of the flag added by HelpFlag. Derived
// identifiers never begin with a dash, so it cannot collide with them.
const helpID = "-help"

// HelpFlag adds a flag that prints the usage of c and stops the handler
// chain. If definition is empty, "-h, --help" is used.
// HelpFlag should be called before handlers that do work are added.
func (c *Command) HelpFlag(definition string) *Command {
	if definition == "" {
		definition = "-h, --help"
	}
	c.Flag(definition, "Show usage information.", &FlagConfig{Name: helpID})
	return c.Handle(func(_ context.Context, pctx *Context) error {
		if pctx.Flag(helpID) {
			c.Usage(c.output())
			return ErrStop
		}
		return nil
	})
}

// RequireArgs adds a handler that fails if a required positional argument
// of c is missing.
func (c *Command) RequireArgs() *Command {
	return c.Handle(func(_ context.Context, pctx *Context) error {
		for _, a := range c.args.Arguments() {
			if a.required && !pctx.Arg(a.id).Present {
				return &UsageError{c, parseErrorf(a.name, "missing required argument %q", a.name)}
			}
		}
		return nil
	})
}

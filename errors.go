// Copyright 2021 Jonathan Amsterdam.

package clidef

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// A ParseError reports a malformed definition or a malformed invocation.
// Definition errors surface when a command is being built; invocation errors
// surface when an argument vector is matched against a command.
type ParseError struct {
	Msg   string
	Input string // the definition or command-line token at fault, if any
}

func parseErrorf(input, format string, args ...interface{}) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Input: input}
}

func (e *ParseError) Error() string {
	return e.Msg
}

// LogValue implements slog.LogValuer.
func (e *ParseError) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("error", e.Msg)}
	if e.Input != "" {
		attrs = append(attrs, slog.String("input", e.Input))
	}
	return slog.GroupValue(attrs...)
}

// UsageError is an error in how the command is invoked.
// Its message includes the usage of the command.
type UsageError struct {
	cmd *Command
	Err error
}

func NewUsageError(err error) *UsageError {
	return &UsageError{Err: err}
}

func (u *UsageError) Error() string {
	if u.cmd == nil {
		return u.Err.Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %v\n", u.cmd.fullName(), u.Err)
	u.cmd.Usage(&b)
	return strings.TrimSuffix(b.String(), "\n")
}

func (u *UsageError) Unwrap() error {
	return u.Err
}

// ErrStop can be returned by a Handler to skip the remaining handlers of a
// command. Run reports success when a handler returns ErrStop.
var ErrStop = errors.New("stop handler chain")

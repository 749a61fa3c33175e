// Copyright 2021 Jonathan Amsterdam.

/*
Package clidef helps to build command-line programs from short textual
definitions, the kind that appear in a program's help text. For example, here
is a "copy" command that takes two arguments, a flag and an option:

	top := clidef.New("fs", "File utilities.")
	top.Command("copy", "Copy a file.", func(c *clidef.Command) {
	  c.Flag("-f, --force", "Overwrite existing files.", nil).
	    Option("-m, --mode <mode>", "File mode.", nil).
	    Arguments("<src> <dest>").
	    Handle(copyFile)
	})

The command's logic is provided by a Handler:

	func copyFile(ctx context.Context, c *clidef.Context) error {
	  return copy(c.Arg("src").Str, c.Arg("dest").Str, c.Flag("force"))
	}

Before the handlers are called, the command line is matched against the
command's definitions and the results are made available in a [Context].

# Flags and Options

A flag definition is a list of names separated by commas, pipes or spaces.
Short names begin with a single dash and have one character; long names begin
with two dashes. A flag takes no value, so any other text in its definition is
an error.

An option definition is a flag definition followed by a value placeholder. A
placeholder in angle brackets, or a bare word, means the value is required:

	-o, --output <dir>
	--level value

A placeholder in square brackets means the value may be omitted:

	-c, --color [when]

The identifier under which a flag or option is reported is derived from its
first long name, or its first short name if it has no long name. Words
separated by hyphens or whitespace are joined, and the first letter of each
word after the first is upper-cased: "--dry-run" becomes "dryRun" and
"--max-ID" becomes "maxID". Nothing else about the name changes. Set the Name
field of FlagConfig or OptionConfig to choose another.

Values are never attached to names with "=", so "--output=<dir>" is not a
valid definition.

On the command line, short names may be bundled: "-vf" sets both -v and -f. At
most one name in a bundle may be an option, and its value is the next token.
Options configured with Multi collect every value they are given.

# Arguments

A definition of positional arguments is a sequence of placeholders. Angle
brackets mark a required argument and square brackets an optional one; a
trailing "..." makes the last argument variadic. Placeholders separated by
whitespace match separate command-line tokens. Placeholders separated by other
text match a single token that is split on that text:

	<src>..<dest>         matches "a..b"
	<host>:<paths...>     matches "srv:/tmp /var" and collects the rest
	<src> [dest]

Arguments joined by a delimiter other than whitespace must be all required or
all optional. Matching does not fail when a required argument is missing; add
RequireArgs to the command's handlers to check for that.

# Execution

Once the command tree has been built, call the Main method to invoke the
appropriate command and get back an exit code. The entire main function can be

	func main() {
	  os.Exit(top.Main(context.Background()))
	}

For more control, call Command.Run with a context and a slice of arguments, or
Command.RunString with a single line that is split as a shell would, and handle
the error yourself. Errors in how the program was invoked are reported as a
[*UsageError] that includes the command's usage.

Commands log at debug level to the logger set with SetLogger. Nothing is
logged by default.
*/
package clidef

// Package cli holds the plumbing shared by the command-line tools: flag
// parsing, --help and --version handling, logging setup and the mapping of
// errors to messages and exit codes.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vocdoni/gofirma/canontools/internal/version"
)

// Command describes one tool invocation.
type Command struct {
	Name    string
	Usage   string // positional part of the usage line, e.g. "<file>"
	Summary string
	Flags   *pflag.FlagSet

	help        bool
	showVersion bool
	verbose     bool
}

// NewCommand returns a Command with the common flags registered. Tools add
// their own flags to cmd.Flags before calling Parse.
func NewCommand(name, usage, summary string) *Command {
	c := &Command{Name: name, Usage: usage, Summary: summary}
	c.Flags = pflag.NewFlagSet(name, pflag.ContinueOnError)
	c.Flags.SetOutput(io.Discard)
	c.Flags.Usage = func() {}
	c.Flags.BoolVarP(&c.help, "help", "h", false, "show help")
	c.Flags.BoolVar(&c.showVersion, "version", false, "print version and exit")
	c.Flags.BoolVarP(&c.verbose, "verbose", "v", false, "log debug information to stderr")
	return c
}

// Parse parses args. When --help or --version was given the corresponding
// text is written to stdout and done is true.
func (c *Command) Parse(args []string, stdout io.Writer) (done bool, err error) {
	if err := c.Flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			c.PrintHelp(stdout)
			return true, nil
		}
		return true, &UsageError{Err: err}
	}
	if c.help {
		c.PrintHelp(stdout)
		return true, nil
	}
	if c.showVersion {
		fmt.Fprintf(stdout, "%s %s\n", c.Name, version.Info())
		return true, nil
	}
	return false, nil
}

func (c *Command) PrintHelp(w io.Writer) {
	fmt.Fprintf(w, "usage: %s [flags] %s\n\n%s\n\nflags:\n%s", c.Name, c.Usage, c.Summary, c.Flags.FlagUsages())
}

// Args returns the positional arguments left after flag parsing.
func (c *Command) Args() []string {
	return c.Flags.Args()
}

// Verbose reports whether --verbose was given.
func (c *Command) Verbose() bool {
	return c.verbose
}

// Logger builds the tool's logger writing to w.
func (c *Command) Logger(w io.Writer) *zap.Logger {
	return NewLogger(c.verbose, w).Named(c.Name)
}

// NewLogger returns a console logger writing to w at info level, or debug
// level when verbose is set.
func NewLogger(verbose bool, w io.Writer) *zap.Logger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)
	return zap.New(core)
}

// RequireArg returns the first positional argument, or an
// ArgumentMissingError naming what was expected.
func RequireArg(args []string, name string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", &ArgumentMissingError{Name: name}
	}
	if len(args) > 1 {
		return "", &UsageError{Err: fmt.Errorf("unexpected arguments after %s: %v", name, args[1:])}
	}
	return args[0], nil
}

// ReadFile reads path fully, wrapping failures in an IOError.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return data, nil
}

// Report writes err to stderr and returns the exit code for it.
func Report(err error, stderr io.Writer) int {
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return ExitCode(err)
}

// RunFunc is the body of a tool.
type RunFunc func(args []string, stdout, stderr io.Writer) error

// Main runs fn with the process arguments and exits with its status.
func Main(fn RunFunc) {
	os.Exit(Report(fn(os.Args[1:], os.Stdout, os.Stderr), os.Stderr))
}

// Package cli wires the widgets into the termpick command line. Results are
// printed to stdout; the widgets draw on stderr so command substitution
// captures only the result.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atomicstack/termpick/internal/app"
	"github.com/atomicstack/termpick/internal/config"
	"github.com/atomicstack/termpick/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitCancelled = 1
	ExitUsage     = 2
	ExitFailure   = 3
)

// IO carries the process streams and environment into the command tree.
type IO struct {
	In      io.Reader
	Out     io.Writer
	Err     io.Writer
	Environ []string
	// OnStart runs once configuration is resolved, before any widget.
	OnStart func(config.Config)
}

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error {
	return &exitError{code: ExitUsage, err: err}
}

// runtime holds per-invocation state shared by the subcommands.
type runtime struct {
	io  IO
	cfg config.Config
}

// appConfig returns the widget configuration. Widgets always draw on the
// error stream; keys come from the input stream unless it carried content.
func (r *runtime) appConfig(contentFromStdin bool) app.Config {
	cfg := r.cfg.App
	cfg.Output = r.io.Err
	if contentFromStdin {
		cfg.InputTTY = true
	} else {
		cfg.Input = r.io.In
	}
	return cfg
}

// NewRootCommand builds the termpick command tree.
func NewRootCommand(streams IO) *cobra.Command {
	rt := &runtime{io: streams}
	root := &cobra.Command{
		Use:           "termpick",
		Short:         "Keyboard-driven pickers, prompts and menus for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.FromFlags(cmd.Flags(), streams.Environ)
			if err != nil {
				return usageError(err)
			}
			if err := config.Validate(cfg); err != nil {
				return usageError(fmt.Errorf("configuration error: %w", err))
			}
			logging.Configure(cfg.Logging.FilePath)
			logging.SetTraceEnabled(cfg.Logging.Trace)
			rt.cfg = cfg
			if streams.OnStart != nil {
				streams.OnStart(cfg)
			}
			return nil
		},
	}
	config.Register(root.PersistentFlags())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})
	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)
	root.AddCommand(
		newChoiceCommand(rt),
		newMultiCommand(rt),
		newInputCommand(rt),
		newMenuCommand(rt),
		newSchemesCommand(),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, streams IO) int {
	root := NewRootCommand(streams)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	defer logging.Sync()
	if err == nil {
		return ExitOK
	}
	if app.IsCancelled(err) {
		return ExitCancelled
	}
	logging.Error(err)
	fmt.Fprintf(streams.Err, "Error: %v\n", err)
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	return ExitFailure
}

// contentItems returns the positional arguments, or the lines of stdin when
// there are none and stdin is not a terminal.
func contentItems(args []string, in io.Reader) ([]string, bool, error) {
	if len(args) > 0 {
		return args, false, nil
	}
	if in == nil || isTerminal(in) {
		return nil, false, usageError(errors.New("no items: pass them as arguments or on stdin"))
	}
	items, err := readLines(in)
	if err != nil {
		return nil, false, fmt.Errorf("read items: %w", err)
	}
	if len(items) == 0 {
		return nil, false, usageError(errors.New("no items on stdin"))
	}
	return items, true, nil
}

func readLines(in io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

func isTerminal(stream interface{}) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(stream interface{}) int {
	f, ok := stream.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// hasFlag reports whether name was set on the command line.
func hasFlag(fs *pflag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	return f != nil && f.Changed
}

package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/atomicstack/termpick/internal/logging"
	"github.com/atomicstack/termpick/internal/logging/events"
	"github.com/atomicstack/termpick/internal/theme"
	"github.com/atomicstack/termpick/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	// ErrCancelled is returned when a session ends without a result, either
	// through the cancel key or an interrupt.
	ErrCancelled = errors.New("cancelled")
	// ErrTerminalTooSmall is wrapped by a SurfaceError when the body does
	// not fit.
	ErrTerminalTooSmall = ui.ErrTerminalTooSmall
)

// SurfaceError reports a failure of the rendering surface. The terminal has
// already been restored when it is returned.
type SurfaceError = ui.SurfaceError

// IsCancelled reports whether err means the user left without a result.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// IsSurfaceError reports whether err came from the rendering surface.
func IsSurfaceError(err error) bool {
	var surface *SurfaceError
	return errors.As(err, &surface)
}

// Config describes the options shared by every widget session.
type Config struct {
	Title    string
	Exitable bool
	Debug    bool
	Scroll   bool
	Footer   bool
	Scheme   string
	Width    int
	Height   int
	// Input and Output override the terminal; nil uses stdin and stdout.
	Input  io.Reader
	Output io.Writer
	// InputTTY reads keys from the controlling terminal, for when stdin
	// carries the content.
	InputTTY bool
}

func (cfg Config) uiOptions() (ui.Options, error) {
	palette, err := theme.New(cfg.Scheme)
	if err != nil {
		return ui.Options{}, err
	}
	return ui.Options{
		Title:    cfg.Title,
		Exitable: cfg.Exitable,
		Debug:    cfg.Debug,
		Scroll:   cfg.Scroll,
		Footer:   cfg.Footer,
		Palette:  palette,
		Width:    cfg.Width,
		Height:   cfg.Height,
	}, nil
}

func (cfg Config) programOptions(ctx context.Context) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if !cfg.Scroll {
		opts = append(opts, tea.WithAltScreen())
	}
	switch {
	case cfg.InputTTY:
		opts = append(opts, tea.WithInputTTY())
	case cfg.Input != nil:
		opts = append(opts, tea.WithInput(cfg.Input))
	}
	if cfg.Output != nil {
		opts = append(opts, tea.WithOutput(cfg.Output))
	}
	return opts
}

// session is what the runners need from a widget model beyond tea.Model.
type session interface {
	tea.Model
	Err() error
}

// run executes one interactive session. Bubble Tea owns the terminal for the
// duration and restores it on every exit path before run returns.
func run(ctx context.Context, cfg Config, widget string, model session) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := logging.Logr().WithName(widget)
	events.App.Start(map[string]interface{}{
		"widget":   widget,
		"title":    cfg.Title,
		"exitable": cfg.Exitable,
		"scheme":   cfg.Scheme,
		"scroll":   cfg.Scroll,
	})
	log.V(1).Info("session start", "title", cfg.Title, "exitable", cfg.Exitable)

	program := tea.NewProgram(model, cfg.programOptions(ctx)...)
	_, err := program.Run()
	switch {
	case errors.Is(err, tea.ErrProgramKilled):
		err = fmt.Errorf("%s: %w", widget, ErrCancelled)
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%s: %w: %w", widget, ErrCancelled, ctxErr)
		}
	case err != nil:
		err = fmt.Errorf("%s: %w", widget, err)
	default:
		err = modelErr(widget, model.Err())
	}
	if err != nil && !IsCancelled(err) {
		log.Error(err, "session failed")
	}
	return err
}

func modelErr(widget string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ui.ErrInterrupted):
		return fmt.Errorf("%s: %w: %w", widget, ErrCancelled, err)
	}
	return err
}

func finish(widget, outcome string) {
	events.App.Finish(widget, outcome)
	logging.Logr().WithName(widget).V(1).Info("session end", "outcome", outcome)
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/atomicstack/termpick/internal/cli"
	"github.com/atomicstack/termpick/internal/config"
	"github.com/atomicstack/termpick/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	code := cli.Execute(ctx, os.Args[1:], cli.IO{
		In:      os.Stdin,
		Out:     os.Stdout,
		Err:     os.Stderr,
		Environ: os.Environ(),
		OnStart: traceStartup,
	})
	stop()
	os.Exit(code)
}

func traceStartup(cfg config.Config) {
	events.App.Startup(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	flags["configFile"] = cfg.File
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails(os.Stdin, os.Stderr)
	return payload
}

// sessionStreams reports what the widgets will run on: the stream they draw
// on and the one keys are read from.
type sessionStreams struct {
	Draw streamProbe `json:"draw"`
	Keys streamProbe `json:"keys"`
}

type streamProbe struct {
	Stream   string `json:"stream"`
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Error    string `json:"error,omitempty"`
}

// collectTTYDetails probes the draw stream and the key source. Keys come from
// stdin when it is a terminal and from the controlling tty otherwise, which is
// where piped items leave them.
func collectTTYDetails(stdin, draw *os.File) sessionStreams {
	streams := sessionStreams{Draw: probeStream("stderr", draw)}
	if stdin != nil && term.IsTerminal(int(stdin.Fd())) {
		streams.Keys = probeStream("stdin", stdin)
		return streams
	}
	tty, err := os.Open(controllingTTY)
	if err != nil {
		streams.Keys = streamProbe{Stream: controllingTTY, Error: err.Error()}
		return streams
	}
	defer tty.Close()
	streams.Keys = probeStream(controllingTTY, tty)
	return streams
}

const controllingTTY = "/dev/tty"

func probeStream(name string, f *os.File) streamProbe {
	probe := streamProbe{Stream: name}
	if f == nil {
		probe.Error = "not open"
		return probe
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return probe
	}
	probe.Terminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		probe.Error = err.Error()
		return probe
	}
	probe.Width, probe.Height = width, height
	return probe
}

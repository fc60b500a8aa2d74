package main

import (
	"os"
	"testing"

	"github.com/atomicstack/termpick/internal/app"
	"github.com/atomicstack/termpick/internal/config"
)

func TestCollectTTYDetailsProbesSessionStreams(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	info := collectTTYDetails(r, w)
	if info.Draw.Stream != "stderr" || info.Draw.Terminal {
		t.Fatalf("expected non-terminal stderr draw stream, got %+v", info.Draw)
	}
	if info.Keys.Stream != controllingTTY {
		t.Fatalf("expected keys from %s when stdin is piped, got %+v", controllingTTY, info.Keys)
	}
}

func TestProbeStreamWithoutFile(t *testing.T) {
	probe := probeStream("stderr", nil)
	if probe.Terminal || probe.Error == "" {
		t.Fatalf("expected error for missing stream, got %+v", probe)
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Title:    "Pick",
			Exitable: true,
			Footer:   true,
			Scheme:   "red",
			Width:    80,
			Height:   24,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		File: "termpick.yaml",
		Flags: map[string]string{
			"title":  "Pick",
			"width":  "80",
			"height": "24",
			"footer": "true",
			"scheme": "red",
		},
		Args: []string{"--title", "Pick"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["title"] != "Pick" {
		t.Fatalf("expected title flag %q, got %v", "Pick", flagsValue["title"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if flagsValue["configFile"] != "termpick.yaml" {
		t.Fatalf("expected config file termpick.yaml, got %v", flagsValue["configFile"])
	}

	if _, ok := payload["tty"].(sessionStreams); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

package events

import "github.com/atomicstack/termpick/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

// Startup records the resolved configuration and process details.
func (AppTracer) Startup(payload map[string]interface{}) {
	logging.Trace("app.startup", payload)
}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Finish(widget, outcome string) {
	logging.Trace("app.finish", map[string]interface{}{"widget": widget, "outcome": outcome})
}

func (AppTracer) Surface(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("app.surface.error", map[string]interface{}{"op": op, "error": err.Error()})
}

package events

import "github.com/atomicstack/termpick/internal/logging"

type InputTracer struct{}

var Input = InputTracer{}

func (InputTracer) Edit(op string, cursor, length int) {
	logging.Trace("input.edit", map[string]interface{}{"op": op, "cursor": cursor, "length": length})
}

func (InputTracer) Rejected(length int) {
	logging.Trace("input.rejected", map[string]interface{}{"length": length})
}

func (InputTracer) Commit(length int) {
	logging.Trace("input.commit", map[string]interface{}{"length": length})
}

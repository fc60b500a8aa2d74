package events

import "github.com/atomicstack/termpick/internal/logging"

type SelectTracer struct{}

type MultiTracer struct{}

var (
	Select = SelectTracer{}
	Multi  = MultiTracer{}
)

func (SelectTracer) Cursor(cursor, top int) {
	logging.Trace("select.cursor", map[string]interface{}{"cursor": cursor, "top": top})
}

func (SelectTracer) Commit(cursor int) {
	logging.Trace("select.commit", map[string]interface{}{"cursor": cursor})
}

func (SelectTracer) Cancel(honoured bool) {
	logging.Trace("select.cancel", map[string]interface{}{"honoured": honoured})
}

func (MultiTracer) Toggle(index int, chosen []int) {
	logging.Trace("multi.toggle", map[string]interface{}{"index": index, "chosen": chosen})
}

func (MultiTracer) Invert(chosen []int) {
	logging.Trace("multi.invert", map[string]interface{}{"chosen": chosen})
}

func (MultiTracer) Clear() {
	logging.Trace("multi.clear", nil)
}

func (MultiTracer) Undo(applied bool, depth int) {
	logging.Trace("multi.undo", map[string]interface{}{"applied": applied, "depth": depth})
}

func (MultiTracer) Commit(chosen []int) {
	logging.Trace("multi.commit", map[string]interface{}{"chosen": chosen})
}

func (MultiTracer) Cursor(cursor, top int) {
	logging.Trace("multi.cursor", map[string]interface{}{"cursor": cursor, "top": top})
}

func (MultiTracer) Cancel(honoured bool) {
	logging.Trace("multi.cancel", map[string]interface{}{"honoured": honoured})
}

package events

import "github.com/atomicstack/termpick/internal/logging"

type MenuTracer struct{}

type CommandTracer struct{}

var (
	Menu    = MenuTracer{}
	Command = CommandTracer{}
)

func (MenuTracer) Focus(name string) {
	logging.Trace("menu.focus", map[string]interface{}{"name": name})
}

func (MenuTracer) Descend(name string) {
	logging.Trace("menu.descend", map[string]interface{}{"name": name})
}

func (MenuTracer) Ascend(breadcrumb []string) {
	logging.Trace("menu.ascend", map[string]interface{}{"breadcrumb": breadcrumb})
}

func (MenuTracer) Invoke(name string) {
	logging.Trace("menu.invoke", map[string]interface{}{"name": name})
}

func (MenuTracer) Failed(name string, err error) {
	if err == nil {
		return
	}
	logging.Trace("menu.invoke.error", map[string]interface{}{"name": name, "error": err.Error()})
}

func (MenuTracer) LogScroll(offset int) {
	logging.Trace("menu.log.scroll", map[string]interface{}{"offset": offset})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Busy(id, label string) {
	logging.Trace("command.busy", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label string, done bool) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "done": done})
}

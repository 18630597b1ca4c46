package events

import "github.com/atomicstack/pinta/internal/logging"

type NavTracer struct{}

type SearchTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	Nav     = NavTracer{}
	Search  = SearchTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (NavTracer) Cursor(view string, selected, offset int) {
	logging.Trace("nav.cursor", map[string]interface{}{"view": view, "selected": selected, "offset": offset})
}

func (NavTracer) Tab(tab string) {
	logging.Trace("nav.tab", map[string]interface{}{"tab": tab})
}

func (NavTracer) Help(open bool, category int) {
	logging.Trace("nav.help", map[string]interface{}{"open": open, "category": category})
}

func (SearchTracer) Start() {
	logging.Trace("search.start", nil)
}

func (SearchTracer) Append(query string, matches int) {
	logging.Trace("search.append", map[string]interface{}{"query": query, "matches": matches})
}

func (SearchTracer) Backspace(query string, matches int) {
	logging.Trace("search.backspace", map[string]interface{}{"query": query, "matches": matches})
}

func (SearchTracer) Cancel() {
	logging.Trace("search.cancel", nil)
}

func (SearchTracer) Commit(query string, matches int) {
	logging.Trace("search.commit", map[string]interface{}{"query": query, "matches": matches})
}

func (SearchTracer) Jump(cursor, index int) {
	logging.Trace("search.jump", map[string]interface{}{"cursor": cursor, "index": index})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}

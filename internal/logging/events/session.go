package events

import "github.com/atomicstack/pinta/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Loaded(count int) {
	logging.Trace("session.loaded", map[string]interface{}{"count": count})
}

// Skip records a wire line that did not parse.
func (SessionTracer) Skip(kind, line string) {
	logging.Trace("session.skip", map[string]interface{}{"kind": kind, "line": line})
}

func (SessionTracer) Refresh() {
	logging.Trace("session.refresh", nil)
}

func (SessionTracer) Attach(name string) {
	logging.Trace("session.attach", map[string]interface{}{"name": name})
}

func (SessionTracer) Create(dir, name string) {
	logging.Trace("session.create", map[string]interface{}{"dir": dir, "name": name})
}

func (SessionTracer) Reuse(name string) {
	logging.Trace("session.reuse", map[string]interface{}{"name": name})
}

func (SessionTracer) Fallback(name string, err error) {
	payload := map[string]interface{}{"name": name}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("session.create.fallback", payload)
}

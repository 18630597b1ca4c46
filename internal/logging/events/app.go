package events

import "github.com/atomicstack/pinta/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(reason string) {
	logging.Trace("app.exit", map[string]interface{}{"reason": reason})
}

func (AppTracer) Resize(width, height int) {
	logging.Trace("app.resize", map[string]interface{}{"width": width, "height": height})
}

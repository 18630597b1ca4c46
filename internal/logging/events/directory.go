package events

import "github.com/atomicstack/pinta/internal/logging"

type DirectoryTracer struct{}

var Directory = DirectoryTracer{}

func (DirectoryTracer) Enter(path string, entries int) {
	logging.Trace("dir.enter", map[string]interface{}{"path": path, "entries": entries})
}

func (DirectoryTracer) Hidden(show bool) {
	logging.Trace("dir.hidden", map[string]interface{}{"show": show})
}

func (DirectoryTracer) Changed(path string) {
	logging.Trace("dir.changed", map[string]interface{}{"path": path})
}

func (DirectoryTracer) Copy(path string) {
	logging.Trace("dir.copy", map[string]interface{}{"path": path})
}

package backend

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/atomicstack/pinta/internal/logging/events"
)

// Event reports that the watched directory changed, or that watching failed.
type Event struct {
	Path string
	Err  error
}

// Watcher follows a single directory and publishes coalesced change events.
type Watcher struct {
	fs       *fsnotify.Watcher
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu   sync.Mutex
	path string

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts a watcher that emits at most one event per interval.
func NewWatcher(interval time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("start fsnotify: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		fs:       fsw,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.loop(newThrottle(interval))

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w, nil
}

// Watch moves the watcher to path, dropping the previous directory.
func (w *Watcher) Watch(path string) error {
	path = filepath.Clean(path)
	w.mu.Lock()
	defer w.mu.Unlock()
	if path == w.path {
		return nil
	}
	if w.path != "" {
		_ = w.fs.Remove(w.path)
	}
	if err := w.fs.Add(path); err != nil {
		w.path = ""
		return fmt.Errorf("watch %s: %w", path, err)
	}
	w.path = path
	return nil
}

// Path returns the directory currently watched.
func (w *Watcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Events returns a channel of change events. It is closed after Stop.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher and releases the fsnotify handle.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the event loop has exited and the events channel is
// closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) loop(limit *throttle) {
	defer w.wg.Done()
	defer w.fs.Close()

	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			path := w.origin(ev.Name)
			if !limit.wait(w.ctx) {
				return
			}
			w.drain()
			events.Directory.Changed(path)
			if !w.emit(Event{Path: path}) {
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if !w.emit(Event{Path: w.Path(), Err: err}) {
				return
			}
		}
	}
}

// origin returns the watched directory an fsnotify name belongs to. Events
// still queued from a directory left behind keep that directory's path.
func (w *Watcher) origin(name string) string {
	name = filepath.Clean(name)
	if name == w.Path() {
		return name
	}
	return filepath.Dir(name)
}

// drain discards events queued while throttled so a burst yields one emit.
func (w *Watcher) drain() {
	for {
		select {
		case _, ok := <-w.fs.Events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}

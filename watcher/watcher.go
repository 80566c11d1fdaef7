// Package watcher reruns generation when a model file changes on disk.
package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/formgen/errors"
	"github.com/teranos/formgen/logger"
)

// DefaultDebounce absorbs the burst of events a single editor save produces
const DefaultDebounce = 300 * time.Millisecond

// ChangeFunc is called once per debounced burst of changes to the watched file
type ChangeFunc func(ctx context.Context) error

// Watcher watches a single file. It subscribes to the parent directory so
// that editors which save by rename-and-replace keep triggering events.
// Callbacks run on the Run goroutine, one at a time.
type Watcher struct {
	path     string
	onChange ChangeFunc
	debounce time.Duration
	fsw      *fsnotify.Watcher
}

// Option configures a Watcher
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce. Non-positive values are ignored.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// New creates a watcher for path. Call Run to start delivering changes.
func New(path string, onChange ChangeFunc, opts ...Option) (*Watcher, error) {
	if onChange == nil {
		return nil, errors.New("watcher needs a change callback")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "failed to watch directory of %s", path)
	}

	w := &Watcher{
		path:     abs,
		onChange: onChange,
		debounce: DefaultDebounce,
		fsw:      fsw,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}

// Run delivers debounced change callbacks until ctx is cancelled. A burst of
// events that arrives while a callback is running is delivered once that
// callback returns. Run does not return while a callback is in flight.
// Callback errors are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debugw("Model watcher detected change",
				"file", event.Name,
				"op", event.Op.String())

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if ctx.Err() != nil {
				return nil
			}
			if err := w.onChange(ctx); err != nil {
				logger.Errorw("Regeneration failed",
					"model", w.path,
					"error", err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("Model watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

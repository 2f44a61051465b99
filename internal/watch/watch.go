package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// options configures Watch.
type options struct {
	debounce time.Duration
	logger   *slog.Logger
}

// Option configures Watch.
type Option func(*options)

// WithDebounce sets the quiet period after the last event before onChange
// runs. Zero selects DefaultDebounceDuration.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithLogger sets the logger for watcher errors and events.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Watch calls onChange each time path is written or re-created, until ctx is
// cancelled. Bursts of events are coalesced. Calls to onChange never overlap
// and happen on the calling goroutine; an error from onChange is logged and
// watching continues.
//
// Watch returns nil when ctx is cancelled, or an error if the watch cannot
// be set up.
func Watch(ctx context.Context, path string, onChange func() error, opts ...Option) error {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.Close() //nolint:errcheck // nothing to do on close failure

	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	debouncer := NewDebouncer(o.debounce)
	defer debouncer.Cancel()

	// Holds at most one pending change so callbacks run on this goroutine.
	changed := make(chan struct{}, 1)
	notify := func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}

	o.logger.Debug("watching input file", "path", target)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(event, target) {
				continue
			}
			o.logger.Debug("input file event", "path", event.Name, "op", event.Op.String())
			debouncer.Trigger(notify)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			o.logger.Warn("file watcher error", "error", err)

		case <-changed:
			if err := onChange(); err != nil {
				o.logger.Warn("recompute failed", "path", target, "error", err)
			}
		}
	}
}

// relevant reports whether event changes the contents of target.
// Removals and renames are skipped; a replacing editor follows them with a
// Create for the same name.
func relevant(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create)
}

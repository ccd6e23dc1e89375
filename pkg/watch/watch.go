package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/platinummonkey/proto2xsd/pkg/namespace"
	"github.com/platinummonkey/proto2xsd/pkg/observability"
	"github.com/sirupsen/logrus"
)

// DefaultDelay is how long events are collected before the handler runs
const DefaultDelay = 200 * time.Millisecond

// Handler is called with the sorted set of changed files
type Handler func(ctx context.Context, changed []string) error

// Watcher reports changes to .proto files below a set of directories
type Watcher struct {
	dirs    []string
	delay   time.Duration
	handler Handler
	log     *logrus.Logger
}

// New creates a watcher. Duplicate directories are watched once.
func New(dirs []string, delay time.Duration, handler Handler, log *logrus.Logger) *Watcher {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if log == nil {
		log = logrus.New()
	}

	seen := make(map[string]bool, len(dirs))
	unique := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		dir = filepath.Clean(dir)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		unique = append(unique, dir)
	}

	return &Watcher{
		dirs:    unique,
		delay:   delay,
		handler: handler,
		log:     log,
	}
}

// Dirs returns the watched directories
func (w *Watcher) Dirs() []string {
	return w.dirs
}

// Run blocks until ctx is cancelled or the underlying watcher fails
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range w.dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		w.log.WithField("dir", dir).Info("watching for changes")
	}

	timer := time.NewTimer(w.delay)
	timer.Stop()
	defer timer.Stop()

	pending := make(map[string]bool)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			w.log.WithField("file", event.Name).Debug("modified file")
			pending[event.Name] = true
			timer.Reset(w.delay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("watcher error")

		case <-timer.C:
			changed := make([]string, 0, len(pending))
			for name := range pending {
				changed = append(changed, name)
			}
			sort.Strings(changed)
			clear(pending)
			w.dispatch(ctx, changed)
		}
	}
}

func (w *Watcher) dispatch(ctx context.Context, changed []string) {
	defer observability.RecoverPanic(w.log, "watch handler")

	if err := w.handler(ctx, changed); err != nil {
		w.log.WithError(err).Error("regeneration failed")
	}
}

func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Ext(event.Name) == namespace.SourceExtension
}

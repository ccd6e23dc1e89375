package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recorder) handle(_ context.Context, changed []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, changed)
	return nil
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.calls...)
}

func start(t *testing.T, w *Watcher) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("watcher did not stop")
		}
	})

	// give the watcher time to register its directories
	time.Sleep(100 * time.Millisecond)
}

func TestNew(t *testing.T) {
	w := New([]string{"a", "a/", "./a", "b"}, 0, nil, nil)
	assert.Equal(t, []string{"a", "b"}, w.Dirs())
	assert.Equal(t, DefaultDelay, w.delay)
	assert.NotNil(t, w.log)
}

func TestRelevant(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write proto", fsnotify.Event{Name: "a.proto", Op: fsnotify.Write}, true},
		{"create proto", fsnotify.Event{Name: "a.proto", Op: fsnotify.Create}, true},
		{"rename proto", fsnotify.Event{Name: "a.proto", Op: fsnotify.Rename}, true},
		{"chmod proto", fsnotify.Event{Name: "a.proto", Op: fsnotify.Chmod}, false},
		{"remove proto", fsnotify.Event{Name: "a.proto", Op: fsnotify.Remove}, false},
		{"write xsd", fsnotify.Event{Name: "a.xsd", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevant(tt.event))
		})
	}
}

func TestWatcher_Run(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{}
	logger, _ := test.NewNullLogger()

	start(t, New([]string{dir}, 50*time.Millisecond, rec.handle, logger))

	path := filepath.Join(dir, "person.proto")
	require.NoError(t, os.WriteFile(path, []byte("message Person {\n}\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "person.xsd"), []byte("<xs:schema/>"), 0644))

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) > 0
	}, 2*time.Second, 20*time.Millisecond)

	for _, changed := range rec.snapshot() {
		assert.Equal(t, []string{path}, changed)
	}
}

func TestWatcher_HandlerFailureKeepsWatching(t *testing.T) {
	dir := t.TempDir()
	logger, hook := test.NewNullLogger()

	var mu sync.Mutex
	calls := 0
	handler := func(context.Context, []string) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls == 1 {
			return errors.New("boom")
		}
		panic("worse")
	}

	start(t, New([]string{dir}, 20*time.Millisecond, handler, logger))

	path := filepath.Join(dir, "a.proto")
	require.NoError(t, os.WriteFile(path, []byte("message A {\n}\n"), 0644))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls >= 1
	}, 2*time.Second, 10*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("message B {\n}\n"), 0644))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls >= 2
	}, 2*time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		for _, entry := range hook.AllEntries() {
			if entry.Level == logrus.ErrorLevel && entry.Message == "PANIC recovered" {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}

func TestWatcher_MissingDir(t *testing.T) {
	logger, _ := test.NewNullLogger()
	w := New([]string{filepath.Join(t.TempDir(), "missing")}, 0, nil, logger)

	err := w.Run(context.Background())
	assert.Error(t, err)
}

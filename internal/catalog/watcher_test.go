package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("profiles: []\n"), 0o600); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}

	watcher := NewWatcher(path, 10*time.Millisecond, func() {}, nil)

	if watcher.IsRunning() {
		t.Error("watcher running before Start")
	}

	if err := watcher.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !watcher.IsRunning() {
		t.Error("watcher not running after Start")
	}

	if err := watcher.Start(); err == nil {
		t.Error("expected error starting an already running watcher")
	}

	if err := watcher.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if watcher.IsRunning() {
		t.Error("watcher still running after Stop")
	}

	// Stopping again is a no-op.
	if err := watcher.Stop(); err != nil {
		t.Errorf("second Stop failed: %v", err)
	}
}

func TestWatcherTriggersReloadOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("profiles: []\n"), 0o600); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}

	reloaded := make(chan struct{}, 1)
	watcher := NewWatcher(path, 10*time.Millisecond, func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	}, nil)

	if err := watcher.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer func() { _ = watcher.Stop() }()

	if err := os.WriteFile(path, []byte("extendBuiltin: true\nprofiles: []\n"), 0o600); err != nil {
		t.Fatalf("failed to rewrite catalog file: %v", err)
	}
	// The modification timestamp must advance past the one recorded at
	// Start for the change detection to fire, regardless of filesystem
	// timestamp granularity.
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("failed to bump modification time: %v", err)
	}

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("reload callback not invoked after file change")
	}
}

func TestWatcherDefaultDebounce(t *testing.T) {
	watcher := NewWatcher("catalog.yaml", 0, func() {}, nil)
	if watcher.debounceDelay != time.Second {
		t.Errorf("debounceDelay = %v, expected 1s default", watcher.debounceDelay)
	}
}

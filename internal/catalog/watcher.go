package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"jobfit/internal/errors"
)

// Watcher watches a catalog file for changes and triggers reloads
type Watcher struct {
	mu sync.Mutex

	path        string
	lastModTime time.Time

	fsWatcher     *fsnotify.Watcher
	debounceDelay time.Duration
	debounceTimer *time.Timer

	stopChan   chan struct{}
	reloadChan chan struct{}

	reloadCallback func()
	logger         *errors.Logger

	running bool
}

// NewWatcher creates a catalog file watcher. The callback runs after file
// changes settle for the debounce delay.
func NewWatcher(path string, debounceDelay time.Duration, reloadCallback func(), logger *errors.Logger) *Watcher {
	if debounceDelay == 0 {
		debounceDelay = time.Second
	}

	return &Watcher{
		path:           path,
		debounceDelay:  debounceDelay,
		stopChan:       make(chan struct{}),
		reloadChan:     make(chan struct{}, 1), // Buffered to prevent blocking
		reloadCallback: reloadCallback,
		logger:         logger,
	}
}

// Start begins watching the catalog file for changes
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("catalog watcher is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	w.fsWatcher = watcher

	if stat, err := os.Stat(w.path); err == nil {
		w.lastModTime = stat.ModTime()
	}

	if err := w.fsWatcher.Add(w.path); err != nil {
		if !os.IsNotExist(err) {
			w.closeWatcher()
			return fmt.Errorf("failed to watch file %s: %w", w.path, err)
		}
	}

	// Also watch the directory to catch atomic writes (rename operations)
	dir := filepath.Dir(w.path)
	if err := w.fsWatcher.Add(dir); err != nil {
		w.closeWatcher()
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	w.running = true
	go w.watchLoop()

	if w.logger != nil {
		w.logger.Info("Catalog file watcher started",
			"file", w.path,
			"debounce_delay", w.debounceDelay)
	}
	return nil
}

// Stop stops the catalog file watcher
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	close(w.stopChan)

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	if w.fsWatcher != nil {
		if err := w.fsWatcher.Close(); err != nil {
			if w.logger != nil {
				w.logger.LogError(err, "Failed to close file system watcher")
			}
			return err
		}
	}

	w.running = false

	if w.logger != nil {
		w.logger.Info("Catalog file watcher stopped")
	}

	return nil
}

// IsRunning returns whether the watcher is currently running
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *Watcher) closeWatcher() {
	if w.fsWatcher != nil {
		if err := w.fsWatcher.Close(); err != nil && w.logger != nil {
			w.logger.LogError(err, "Failed to close file watcher during cleanup")
		}
	}
}

// watchLoop is the main event loop for file watching
func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if w.shouldProcessEvent(event) {
				w.scheduleReload()
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.LogError(err, "File watcher error")
			}

		case <-w.reloadChan:
			// Debounced reload trigger
			if w.hasFileChanged() {
				if w.logger != nil {
					w.logger.Info("Catalog file changed, triggering reload", "file", w.path)
				}
				w.reloadCallback()
			}

		case <-w.stopChan:
			return
		}
	}
}

// shouldProcessEvent determines if a file system event should trigger a reload check
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Name != w.path && filepath.Base(event.Name) != filepath.Base(w.path) {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// hasFileChanged checks if the file has been modified since last check
func (w *Watcher) hasFileChanged() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	stat, err := os.Stat(w.path)
	if err != nil {
		if os.IsNotExist(err) && !w.lastModTime.IsZero() {
			// File was deleted
			w.lastModTime = time.Time{}
			return true
		}
		return false
	}

	if w.lastModTime.IsZero() || stat.ModTime().After(w.lastModTime) {
		w.lastModTime = stat.ModTime()
		return true
	}

	return false
}

// scheduleReload schedules a debounced reload
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debounceDelay, func() {
		select {
		case w.reloadChan <- struct{}{}:
			// Reload scheduled
		default:
			// Channel is full, reload already scheduled
		}
	})
}

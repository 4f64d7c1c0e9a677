package planner

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// GoalWatcher monitors a single goal file and reports debounced change
// events so callers can recompile the plan on edit.
type GoalWatcher struct {
	Path    string
	Changes <-chan string // Read-only external channel; carries the file path.

	changes chan string
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewGoalWatcher creates a watcher for the given goal file.
func NewGoalWatcher(path string) (*GoalWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan string, 4)
	return &GoalWatcher{
		Path:    path,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching. The parent directory is watched rather than the
// file itself so editors that replace the file on save keep firing events.
func (w *GoalWatcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *GoalWatcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *GoalWatcher) loop() {
	defer close(w.done)

	const debounce = 100 * time.Millisecond
	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	target := filepath.Clean(w.Path)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			if !pending.IsZero() && time.Since(pending) >= debounce {
				pending = time.Time{}
				w.changes <- w.Path
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal.
		}
	}
}

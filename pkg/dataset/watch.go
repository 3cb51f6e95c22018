package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/cellgraph/cellgraph/pkg/depgraph"
	"github.com/cellgraph/cellgraph/pkg/logger"
	"github.com/fsnotify/fsnotify"
)

var watchLog = logger.New("dataset:watch")

// DefaultDebounce is how long the watcher waits after the last event before reloading.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads a dataset file whenever it changes on disk.
type Watcher struct {
	path     string
	onChange func(depgraph.Dataset, error)

	// Debounce collapses bursts of events (editors often write, chmod and rename).
	Debounce time.Duration
}

// NewWatcher returns a watcher for the dataset at path. onChange receives the freshly
// loaded dataset or the load error.
func NewWatcher(path string, onChange func(depgraph.Dataset, error)) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		onChange: onChange,
		Debounce: DefaultDebounce,
	}
}

// Run loads the dataset once, then watches the file's directory until ctx is
// cancelled. The directory is watched instead of the file so that editors replacing
// the file via rename keep being followed.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	watchLog.Printf("Watching %s in %s", filepath.Base(w.path), dir)

	w.reload()

	var timer *time.Timer
	var pending <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			watchLog.Print("Watch cancelled")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			watchLog.Printf("Event %s", event)
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
			} else {
				timer.Reset(w.Debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			w.reload()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("file watcher failed: %w", err)
		}
	}
}

func (w *Watcher) reload() {
	ds, err := Load(w.path)
	if err != nil {
		watchLog.Printf("Reload failed: %v", err)
	}
	w.onChange(ds, err)
}

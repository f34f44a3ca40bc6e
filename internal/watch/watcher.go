package watch

import (
	"context"
	"io/fs"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes a content directory and reports batches of changed
// files. Events are filtered through include/exclude globs and debounced,
// so a burst of editor writes triggers one rebuild.
type Watcher struct {
	Dir      string
	Include  []string
	Exclude  []string
	Debounce time.Duration
	OnChange func(paths []string)
}

// Run blocks, delivering change batches to OnChange until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	// Watch the directory and any subdirectories present at start.
	err = filepath.WalkDir(w.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			rel, err := filepath.Rel(w.Dir, ev.Name)
			if err != nil {
				rel = ev.Name
			}
			if !MatchesInclude(rel, w.Include) || MatchesExclude(rel, w.Exclude) {
				continue
			}
			if !pending[rel] {
				pending[rel] = true
			}
			timer.Reset(debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			pending = make(map[string]bool)
			if w.OnChange != nil {
				w.OnChange(paths)
			}
		}
	}
}

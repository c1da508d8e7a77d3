// Package watch re-runs validation when resource files change, batching
// bursts of file events behind a debounce delay.
package watch

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// DefaultDebounce is how long the watcher waits for more changes before
// invoking the callback.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches a directory tree for resource file changes.
type Watcher struct {
	root     string
	ext      string
	debounce time.Duration
	fsw      *fsnotify.Watcher

	pendingMu sync.Mutex
	pending   map[string]struct{}
}

// New creates a watcher over root for files with the given extension.
func New(root, ext string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		root:     root,
		ext:      ext,
		debounce: debounce,
		fsw:      fsw,
		pending:  make(map[string]struct{}),
	}, nil
}

// Run watches until the context is cancelled, invoking onChange with the
// sorted set of changed paths after each quiet period.
func (w *Watcher) Run(ctx context.Context, onChange func(paths []string)) error {
	defer w.fsw.Close()

	if err := w.addRecursive(w.root); err != nil {
		return err
	}
	log.Info().Str("root", w.root).Msg("Watching for changes")

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ev, timer)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("Watch error")

		case <-timer.C:
			if paths := w.takePending(); len(paths) > 0 {
				onChange(paths)
			}
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event, timer *time.Timer) {
	// New directories need their own watches.
	if ev.Op.Has(fsnotify.Create) {
		if err := w.addRecursive(ev.Name); err == nil {
			log.Debug().Str("path", ev.Name).Msg("Added watch")
		}
	}

	if !strings.EqualFold(filepath.Ext(ev.Name), w.ext) {
		return
	}
	if !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Write) &&
		!ev.Op.Has(fsnotify.Remove) && !ev.Op.Has(fsnotify.Rename) {
		return
	}

	w.pendingMu.Lock()
	w.pending[ev.Name] = struct{}{}
	w.pendingMu.Unlock()

	timer.Reset(w.debounce)
}

func (w *Watcher) takePending() []string {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	if len(w.pending) == 0 {
		return nil
	}
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]struct{})
	sort.Strings(paths)
	return paths
}

// addRecursive registers watches on path and every directory below it.
// Non-directories are ignored.
func (w *Watcher) addRecursive(path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		return w.fsw.Add(p)
	})
}

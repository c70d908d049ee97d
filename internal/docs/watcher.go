package docs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/anditko/docnav/internal/nav"
	"github.com/fsnotify/fsnotify"
)

// Event conveys a refreshed section tree or an error from a rescan.
type Event struct {
	Sections []nav.Item
	Err      error
}

// Watcher rescans the docs directory when markdown files change and
// publishes the resulting section tree.
type Watcher struct {
	dir string

	ctx    context.Context
	cancel context.CancelFunc

	fsw    *fsnotify.Watcher
	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching dir. Rescans are throttled to at most one per
// interval so editor save bursts collapse into a single refresh.
func NewWatcher(dir string, interval time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := addRecursive(fsw, dir); err != nil {
		fsw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		dir:    dir,
		ctx:    ctx,
		cancel: cancel,
		fsw:    fsw,
		events: make(chan Event, 4),
	}

	w.wg.Add(1)
	go w.loop(newThrottle(interval))

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w, nil
}

// Events returns the channel of refresh events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The loop exits after its current rescan.
func (w *Watcher) Stop() {
	w.cancel()
	w.fsw.Close()
}

// Wait blocks until the watcher loop has exited and the events channel is
// closed. Call after Stop when a clean drain is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) loop(th *throttle) {
	defer w.wg.Done()

	emit := func() bool {
		th.wait()
		sections, err := Scan(w.dir)
		evt := Event{Sections: sections, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	for {
		select {
		case <-w.ctx.Done():
			return
		case fsEvt, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !relevant(fsEvt) {
				continue
			}
			if fsEvt.Op.Has(fsnotify.Create) {
				// New directories need their own watch before files
				// inside them produce events.
				_ = addRecursive(w.fsw, fsEvt.Name)
			}
			if !emit() {
				return
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

func relevant(evt fsnotify.Event) bool {
	if evt.Op.Has(fsnotify.Chmod) {
		return false
	}
	if strings.EqualFold(filepath.Ext(evt.Name), ".md") {
		return true
	}
	return evt.Op.Has(fsnotify.Create) || evt.Op.Has(fsnotify.Remove) || evt.Op.Has(fsnotify.Rename)
}

func addRecursive(fsw *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return nil
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if name := d.Name(); strings.HasPrefix(name, ".") && path != root {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
}

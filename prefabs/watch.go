package prefabs

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultQuiet is how long a prefab file must stay untouched before its change
// is reported.
const DefaultQuiet = 100 * time.Millisecond

// Change reports that a prefab file was written on disk.
type Change struct {
	// Name is the prefab name as accepted by Load, e.g. "player.yaml".
	Name string
	Path string
}

// Watcher reports prefab edits. Bursts of writes to the same file collapse
// into a single Change once the file has been quiet for the configured time.
type Watcher struct {
	fs      *fsnotify.Watcher
	quiet   time.Duration
	changes chan Change
	errs    chan error
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(quiet time.Duration, dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}
	if quiet <= 0 {
		quiet = DefaultQuiet
	}

	w := &Watcher{
		fs:      fw,
		quiet:   quiet,
		changes: make(chan Change, 16),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Changes is closed when the watcher stops.
func (w *Watcher) Changes() <-chan Change { return w.changes }

// Errors carries at most one pending error; later ones are dropped until it
// is read.
func (w *Watcher) Errors() <-chan error { return w.errs }

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.changes)
	defer close(w.errs)

	pending := make(map[string]struct{})
	settle := time.NewTimer(w.quiet)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || !isPrefabFile(event.Name) {
				continue
			}
			pending[event.Name] = struct{}{}
			settle.Reset(w.quiet)

		case <-settle.C:
			if !w.flush(pending) {
				return
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}

		case <-w.done:
			return
		}
	}
}

// flush sends every pending change in path order. It reports false once the
// watcher has been closed.
func (w *Watcher) flush(pending map[string]struct{}) bool {
	paths := make([]string, 0, len(pending))
	for p := range pending {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		delete(pending, p)
		select {
		case w.changes <- Change{Name: Name(p), Path: p}:
		case <-w.done:
			return false
		}
	}
	return true
}

func isPrefabFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

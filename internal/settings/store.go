package settings

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"runpad/internal/system"
)

// Store holds an in-memory copy of Settings and reloads it when the file
// changes, so sessions polling the accessors pick up edits on the next
// render without being rebuilt.
type Store struct {
	mu      sync.RWMutex
	current Settings
	watcher *fsnotify.Watcher
}

// NewStore loads current settings and starts watching the config directory.
// Watch failures are logged and degrade to a static store.
func NewStore() *Store {
	s, err := Load()
	if err != nil {
		system.Logger.Warn("settings load failed, using defaults", "err", err)
		s = Default()
	}
	st := &Store{current: s}

	p, err := Path()
	if err != nil {
		return st
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		system.Logger.Warn("settings watcher unavailable", "err", err)
		return st
	}
	// Watch the directory: editors replace files rather than write in place.
	if err := w.Add(filepath.Dir(p)); err != nil {
		_ = w.Close()
		return st
	}
	st.watcher = w
	go st.watch(p)
	return st
}

func (st *Store) watch(path string) {
	for {
		select {
		case ev, ok := <-st.watcher.Events:
			if !ok {
				return
			}
			if ev.Name != path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if s, err := Load(); err == nil {
				st.mu.Lock()
				st.current = s
				st.mu.Unlock()
			}
		case _, ok := <-st.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// Close stops the file watcher.
func (st *Store) Close() {
	if st.watcher != nil {
		_ = st.watcher.Close()
	}
}

// Current returns a copy of the active settings.
func (st *Store) Current() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.current
}

// Set replaces the in-memory settings (used after an in-process save).
func (st *Store) Set(s Settings) {
	st.mu.Lock()
	st.current = s.normalized()
	st.mu.Unlock()
}

// MaxOutputLines implements terminal.Settings.
func (st *Store) MaxOutputLines() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.current.MaxOutputLines
}

// UsePty reports whether commands should run on a pseudo-terminal.
func (st *Store) UsePty() bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.current.UsePty
}

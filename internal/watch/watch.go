// Package watch provides file-change notification for Nexus source files,
// backed by OS-native notifications.
package watch

import (
	"github.com/fsnotify/fsnotify"
)

// Op is a bit set of file operations observed on a watched path.
type Op uint32

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
	OpChmod
)

// Event is a single file-change notification.
type Event struct {
	Path string
	Op   Op
}

// Changed reports whether the event means the file contents may have
// changed and a watcher-driven pipeline should re-run.
func (e Event) Changed() bool {
	return e.Op&(OpCreate|OpWrite|OpRename) != 0
}

// Watcher delivers file-change events for registered paths over channels.
type Watcher struct {
	w   *fsnotify.Watcher
	evC chan Event
	erC chan error
}

// New creates a watcher and starts its delivery loop.
func New() (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &Watcher{w: w, evC: make(chan Event, 128), erC: make(chan error, 1)}
	go fw.loop()
	return fw, nil
}

func (fw *Watcher) loop() {
	for {
		select {
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			var op Op
			if ev.Op&fsnotify.Create != 0 {
				op |= OpCreate
			}
			if ev.Op&fsnotify.Write != 0 {
				op |= OpWrite
			}
			if ev.Op&fsnotify.Remove != 0 {
				op |= OpRemove
			}
			if ev.Op&fsnotify.Rename != 0 {
				op |= OpRename
			}
			if ev.Op&fsnotify.Chmod != 0 {
				op |= OpChmod
			}
			fw.evC <- Event{Path: ev.Name, Op: op}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			fw.erC <- err
		}
	}
}

// Events returns the event delivery channel.
func (fw *Watcher) Events() <-chan Event { return fw.evC }

// Errors returns the error delivery channel.
func (fw *Watcher) Errors() <-chan error { return fw.erC }

// Add registers a path for watching.
func (fw *Watcher) Add(name string) error { return fw.w.Add(name) }

// Remove unregisters a path.
func (fw *Watcher) Remove(name string) error { return fw.w.Remove(name) }

// Close stops the watcher.
func (fw *Watcher) Close() error { return fw.w.Close() }

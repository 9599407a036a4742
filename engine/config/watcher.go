package config

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/anima-backends/engine/core"
)

// Watcher reloads a configuration file whenever it is written and publishes
// every valid version on Changes. Invalid files are logged and skipped.
type Watcher struct {
	path string

	mutex    sync.Mutex
	current  AppConfig
	isClosed bool

	fsnotify *fsnotify.Watcher
	changes  chan AppConfig
	done     chan struct{}
	stopped  chan struct{}
}

func NewWatcher(path string, initial AppConfig) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fsWatch.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		current:  initial,
		fsnotify: fsWatch,
		changes:  make(chan AppConfig, 1),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	// Editors often replace the file instead of writing it, so the
	// directory is watched rather than the file.
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}
	go w.start()
	return w, nil
}

// Changes delivers reloaded configurations. Only the latest one is kept
// when the receiver falls behind.
func (w *Watcher) Changes() <-chan AppConfig {
	return w.changes
}

func (w *Watcher) Current() AppConfig {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.current
}

func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return errors.New("config watcher already closed")
	}
	w.isClosed = true
	w.mutex.Unlock()

	close(w.done)
	<-w.stopped
	return nil
}

func (w *Watcher) start() {
	defer close(w.stopped)
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.reload()
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("%s", err)

		case <-w.done:
			w.fsnotify.Close()
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		core.LogWarn("ignoring configuration change: %s", err)
		return
	}

	w.mutex.Lock()
	w.current = cfg
	w.mutex.Unlock()

	// Drop a pending value nobody picked up yet.
	select {
	case <-w.changes:
	default:
	}
	w.changes <- cfg
	core.LogInfo("configuration reloaded from %s", w.path)
}

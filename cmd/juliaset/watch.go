package main

import (
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/hubastard/juliaset/engine/core"
)

// shaderWatcher schedules a reload on the render thread whenever one of the
// watched files is written. Bursts of events collapse into one reload.
type shaderWatcher struct {
	w       *fsnotify.Watcher
	files   map[string]bool
	sched   core.Scheduler
	reload  func()
	pending atomic.Bool
	done    chan struct{}
	once    sync.Once
}

// watchShaders watches the directories holding files, so editors that
// replace a file on save are still seen.
func watchShaders(files []string, sched core.Scheduler, reload func()) (*shaderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	sw := &shaderWatcher{
		w:      w,
		files:  make(map[string]bool),
		sched:  sched,
		reload: reload,
		done:   make(chan struct{}),
	}
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			w.Close()
			return nil, err
		}
		sw.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for d := range dirs {
		if err := w.Add(d); err != nil {
			w.Close()
			return nil, err
		}
	}
	go sw.loop()
	return sw, nil
}

func (sw *shaderWatcher) loop() {
	defer close(sw.done)
	for {
		select {
		case ev, ok := <-sw.w.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if abs, err := filepath.Abs(ev.Name); err != nil || !sw.files[abs] {
				continue
			}
			slog.Debug("shader changed", "file", ev.Name, "op", ev.Op.String())
			if sw.pending.CompareAndSwap(false, true) {
				sw.sched.RequestFrame(sw.fire)
			}
		case err, ok := <-sw.w.Errors:
			if !ok {
				return
			}
			slog.Warn("shader watcher", "err", err)
		}
	}
}

// fire never draws; a successful reload requests its own frame.
func (sw *shaderWatcher) fire() bool {
	sw.pending.Store(false)
	sw.reload()
	return false
}

// Close stops watching and waits for the event loop to exit.
func (sw *shaderWatcher) Close() {
	sw.once.Do(func() {
		sw.w.Close()
		<-sw.done
	})
}

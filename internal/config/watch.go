package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-reads a config file whenever it changes on disk.
//
// Reloaded configs are delivered on Updates; the consumer drains it from
// its own loop, so whatever the config feeds (the simulation in particular)
// is only ever touched from that loop.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	updates chan *Config
	errs    chan error
	done    chan struct{}
}

// Watch starts watching path. The parent directory is watched rather than
// the file itself so editors that save by rename are picked up too.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		fsw:     fsw,
		updates: make(chan *Config, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Updates delivers the latest successfully reloaded config. Only the newest
// pending config is kept.
func (w *Watcher) Updates() <-chan *Config { return w.updates }

// Errors delivers reload failures (bad YAML, invalid values).
func (w *Watcher) Errors() <-chan error { return w.errs }

// Close stops watching.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := loadPath(w.path)
			if err != nil {
				offer(w.errs, err)
				continue
			}
			offer(w.updates, cfg)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			offer(w.errs, err)
		}
	}
}

// offer sends v on a one-slot channel, replacing a value nobody has read yet.
func offer[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// Package watcher notifies the viewer when a scene file changes on disk.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a file and triggers a debounced callback on change.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	callback func(string)
	debounce time.Duration
	timer    *time.Timer
}

// New creates a file watcher with the given debounce window.
func New(debounce time.Duration) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	return &FileWatcher{
		watcher:  w,
		debounce: debounce,
	}, nil
}

// Watch registers the file and the callback invoked when it changes.
func (fw *FileWatcher) Watch(file string, callback func(string)) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("resolve path %s: %w", file, err)
	}
	if err := fw.watcher.Add(absPath); err != nil {
		return fmt.Errorf("watch %s: %w", absPath, err)
	}

	fw.mu.Lock()
	fw.callback = callback
	fw.mu.Unlock()
	return nil
}

// Start begins delivering change events. Editors that replace the file on
// save emit Create rather than Write, so both trigger the callback.
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					fw.handleChange(event.Name)
				}
			case _, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
}

func (fw *FileWatcher) handleChange(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.callback == nil {
		return
	}
	if fw.timer != nil {
		fw.timer.Stop()
	}
	callback := fw.callback
	fw.timer = time.AfterFunc(fw.debounce, func() {
		callback(path)
	})
}

// Close stops the watcher.
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}

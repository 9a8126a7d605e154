package codebase

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dhamidi/pyqual/python"
	"github.com/fsnotify/fsnotify"
)

// FileWatcher keeps the disk copies of Python files below the codebase root
// current. Files open in the editor are left alone.
type FileWatcher struct {
	codebase *Codebase
	watcher  *fsnotify.Watcher
	wg       sync.WaitGroup
}

func NewFileWatcher(c *Codebase) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	return &FileWatcher{
		codebase: c,
		watcher:  watcher,
	}, nil
}

// Start loads every Python file below the root and begins processing
// change events.
func (w *FileWatcher) Start() error {
	root := w.codebase.RootDir()
	if err := w.load(root); err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}

	w.wg.Add(1)
	go w.processEvents()
	return nil
}

func (w *FileWatcher) Stop() error {
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

// load walks dir, watching each directory and scanning each Python file.
func (w *FileWatcher) load(dir string) error {
	root := w.codebase.RootDir()
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil
		}
		if d.IsDir() {
			if path != root && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			if err := w.watcher.Add(path); err != nil {
				log.Warningf("cannot watch %s: %s", path, err)
			}
			return nil
		}
		if python.IsPythonFile(path) {
			w.codebase.ScanFile(path)
		}
		return nil
	})
}

func (w *FileWatcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warningf("watcher: %s", err)
		}
	}
}

func (w *FileWatcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		if python.IsPythonFile(path) {
			w.codebase.RemoveFile(path)
		}
		w.codebase.RemoveDir(path)
		return
	}

	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if info.IsDir() {
		// Files may land in a new directory before its watch is added.
		if event.Op&fsnotify.Create != 0 && !skipDir(info.Name()) {
			if err := w.load(path); err != nil {
				log.Warningf("cannot load %s: %s", path, err)
			}
		}
		return
	}
	if python.IsPythonFile(path) {
		w.codebase.ScanFile(path)
	}
}

// skipDir reports whether a directory never holds project sources.
func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "__pycache__" || name == "node_modules"
}

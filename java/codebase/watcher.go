package codebase

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhamidi/doccheck/java"
)

// FileWatcher polls the codebase root and re-checks unit files whose
// modification time changed. OnChange, when set, is called from the watcher
// goroutine after every re-check or removal (with a nil FileInfo).
type FileWatcher struct {
	codebase     *Codebase
	stopCh       chan struct{}
	doneCh       chan struct{}
	pollInterval time.Duration
	modTimes     map[string]time.Time
	OnChange     func(path string, f *FileInfo)
}

func NewFileWatcher(c *Codebase) *FileWatcher {
	return &FileWatcher{
		codebase:     c,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
		pollInterval: 1 * time.Second,
		modTimes:     make(map[string]time.Time),
	}
}

// SetInterval changes the poll interval. It must be called before Start.
func (w *FileWatcher) SetInterval(d time.Duration) {
	w.pollInterval = d
}

func (w *FileWatcher) Start() {
	go w.run()
}

// Stop ends polling and waits for the watcher goroutine to exit.
func (w *FileWatcher) Stop() {
	close(w.stopCh)
	<-w.doneCh
}

func (w *FileWatcher) run() {
	defer close(w.doneCh)
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.scan()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

func (w *FileWatcher) scan() {
	currentFiles := make(map[string]bool)
	root := w.codebase.RootDir()

	filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !java.IsUnitFile(path) {
			return nil
		}

		currentFiles[path] = true

		lastMod, known := w.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			w.modTimes[path] = info.ModTime()
			f, err := w.codebase.ScanFile(path)
			if err != nil {
				log.Warningf("%s", err)
			}
			w.notify(path, f)
		}
		return nil
	})

	for path := range w.modTimes {
		if !currentFiles[path] {
			delete(w.modTimes, path)
			w.codebase.RemoveFile(path)
			w.notify(path, nil)
		}
	}
}

func (w *FileWatcher) notify(path string, f *FileInfo) {
	if w.OnChange != nil {
		w.OnChange(path, f)
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay coalesces the burst of events an editor produces for one save.
const settleDelay = 100 * time.Millisecond

// inputWatcher reports changes to a single file. It watches the file's
// directory so that editors which save by renaming a temp file are seen too.
type inputWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	logger  *log.Logger
}

func newInputWatcher(path string, logger *log.Logger) (*inputWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	return &inputWatcher{path: abs, watcher: fsw, logger: logger}, nil
}

// Run calls onChange once per settled burst of writes to the file until ctx
// is done.
func (w *inputWatcher) Run(ctx context.Context, onChange func()) error {
	defer w.watcher.Close()
	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				settle = time.After(settleDelay)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Printf("watch: %v", err)
		case <-settle:
			settle = nil
			onChange()
		}
	}
}

package portfolio

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits after the last change before
// reloading.
const DefaultDebounce = 300 * time.Millisecond

// Watch reloads the content file at path whenever it changes and passes the
// new profile to onChange. A file that fails to load is logged and skipped;
// whatever the caller last received stays in effect. Watch blocks until ctx
// is cancelled.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func(*Profile)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file with a rename.
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	var (
		timer  *time.Timer
		reload <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			reload = timer.C

		case <-reload:
			reload = nil
			// Load falls back to the defaults for a missing file. Mid-save
			// renames must not swap the live page for the built-in profile.
			if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
				log.Printf("portfolio: %s is missing, keeping previous content", path)
				continue
			}
			p, err := Load(path)
			if err != nil {
				log.Printf("portfolio: reload failed, keeping previous content: %v", err)
				continue
			}
			log.Printf("portfolio: reloaded %s", path)
			onChange(p)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("portfolio: watcher error: %v", err)
		}
	}
}

package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/leapddl/pkg/resource"
)

// debounceDelay coalesces editor save bursts into one re-render.
const debounceDelay = 100 * time.Millisecond

// watchAndRender renders once, then again on every change to one of the
// statement files until ctx is done. Render errors are reported, not fatal.
// A requested migration is written at most once.
func watchAndRender(ctx context.Context, cmdCtx *CommandContext, paths []string, opts *RenderOptions) error {
	r := cmdCtx.Renderer
	logger := cmdCtx.Logger

	watched, err := locateAll(cmdCtx, paths)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Watch parent directories; editors often replace files on save.
	dirs := make(map[string]bool)
	for file := range watched {
		dir := filepath.Dir(file)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	// The migration is written by the first render where every statement is
	// valid; later renders only print.
	current := *opts
	var (
		mu      sync.Mutex
		stopped bool
	)
	render := func() {
		mu.Lock()
		defer mu.Unlock()
		if stopped || ctx.Err() != nil {
			return
		}
		if err := renderFiles(ctx, cmdCtx, paths, &current); err != nil {
			r.Error(err.Error())
			return
		}
		current.Migration = ""
	}
	// A fired timer may still be waiting on mu; nothing renders after return.
	defer func() {
		mu.Lock()
		stopped = true
		mu.Unlock()
	}()

	render()
	r.Println(r.Muted(fmt.Sprintf("Watching %d file(s) for changes...", len(watched))))

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				logger.Debug("statement file changed, re-rendering", "file", event.Name)
				render()
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		}
	}
}

// locateAll resolves every path to the files the accessor would read.
func locateAll(cmdCtx *CommandContext, paths []string) (map[string]bool, error) {
	locator, ok := cmdCtx.Accessor.(resource.Locator)
	if !ok {
		return nil, fmt.Errorf("resource accessor cannot locate files for watching")
	}

	files := make(map[string]bool)
	for _, p := range paths {
		found, err := locator.Locate(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		for _, f := range found {
			abs, err := filepath.Abs(f)
			if err != nil {
				return nil, err
			}
			files[filepath.Clean(abs)] = true
		}
	}
	return files, nil
}

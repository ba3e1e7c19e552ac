package commands

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/leapstack-labs/dotenv-linter/pkg/lint/source"
)

// watchDebounce coalesces bursts of events from editors that write in steps.
const watchDebounce = 100 * time.Millisecond

// watchAndLint lints once, then again after every change to an env file
// under the linted paths, until ctx is canceled.
func watchAndLint(ctx context.Context, cmdCtx *CommandContext, settings lintSettings) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for _, dir := range watchDirs(settings.paths, settings.recursive) {
		if err := watcher.Add(dir); err != nil {
			cmdCtx.Logger.Error("failed to watch directory", "dir", dir, "error", err)
		}
	}

	relint := func() {
		results, err := lintOnce(ctx, cmdCtx, settings)
		if err != nil {
			cmdCtx.Renderer.Error(err.Error())
			return
		}
		if err := cmdCtx.Renderer.RenderLint(results, settings.quiet); err != nil {
			cmdCtx.Logger.Error("failed to render results", "error", err)
		}
	}

	relint()
	cmdCtx.Renderer.Println(cmdCtx.Renderer.Muted("Watching for changes (Ctrl+C to stop)"))

	// One pending run at most; the timer only signals.
	pending := make(chan string, 1)
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
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !source.IsEnvFile(event.Name) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			name := event.Name
			debounceTimer = time.AfterFunc(watchDebounce, func() {
				select {
				case pending <- name:
				default:
				}
			})

		case name := <-pending:
			cmdCtx.Logger.Debug("file changed, re-linting", "file", name)
			relint()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmdCtx.Logger.Error("watcher error", "error", err)
		}
	}
}

// watchDirs returns the directories to watch for the given lint paths.
// Files are watched through their parent directory.
func watchDirs(paths []string, recursive bool) []string {
	seen := make(map[string]bool)
	var dirs []string
	add := func(dir string) {
		dir = filepath.Clean(dir)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			add(filepath.Dir(p))
			continue
		}
		if !recursive {
			add(p)
			continue
		}
		_ = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				add(path)
			}
			return nil
		})
	}
	return dirs
}

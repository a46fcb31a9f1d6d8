package source

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/socialgraph/core"
)

// Watch reloads path on every write or re-create and hands the fresh graph to
// fn. Each reload is a full load; fn always recomputes from scratch.
// Invalid documents are logged and skipped, keeping the previous graph live.
// Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, logger *slog.Logger, fn func(*core.Graph)) error {
	if logger == nil {
		logger = slog.Default()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("source: watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory: editors often replace the file instead of writing it.
	target := filepath.Clean(path)
	if err = w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("source: watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			g, err := Load(target)
			if err != nil {
				logger.Warn("graph reload skipped", "path", target, "err", err)
				continue
			}
			logger.Info("graph reloaded", "path", target, "nodes", g.Len())
			fn(g)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("graph watcher error", "err", err)
		}
	}
}

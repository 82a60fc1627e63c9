package ingest

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/acervo-dev/acervo/constants"
)

type WatchConfig struct {
	Root     string        // documents directory to watch (non-recursive)
	Debounce time.Duration // coalesce rapid write/rename bursts
}

// StartWatcher emits the path of every PDF created or rewritten directly in
// the documents directory. The caller feeds emitted paths to IngestPath;
// ingestion idempotence makes duplicate events harmless.
func StartWatcher(ctx context.Context, cfg WatchConfig) (<-chan string, <-chan error, error) {
	if cfg.Root == "" {
		slog.Error("watcher start failed: no root provided")
		return nil, nil, errors.New("no root provided")
	}

	evCh := make(chan string, 256)
	errCh := make(chan error, 1)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("failed to create fsnotify watcher", "error", err)
		return nil, nil, err
	}
	if err := w.Add(cfg.Root); err != nil {
		slog.Error("failed to watch documents directory", "root", cfg.Root, "error", err)
		_ = w.Close()
		return nil, nil, err
	}

	go func() {
		defer close(evCh)
		defer close(errCh)
		defer func() {
			if err := w.Close(); err != nil {
				slog.Warn("failed to close watcher", "error", err)
			}
		}()
		forward(ctx, cfg, w.Events, w.Errors, evCh, errCh)
	}()

	return evCh, errCh, nil
}

// forward runs the debounce loop. The pending set and the timer are owned by
// this goroutine alone; the timer callback only signals flush, so a file
// event arriving while a flush fires can never race the map.
func forward(ctx context.Context, cfg WatchConfig, events <-chan fsnotify.Event, watchErrs <-chan error, evCh chan<- string, errCh chan<- error) {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	flush := make(chan struct{}, 1)
	pending := map[string]struct{}{}

	sendPending := func() {
		for p := range pending {
			select {
			case evCh <- p:
			default:
			}
			delete(pending, p)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-flush:
			sendPending()
		case e, ok := <-events:
			if !ok {
				return
			}
			if !allowed(e.Name) {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			pending[e.Name] = struct{}{}
			if cfg.Debounce > 0 {
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(cfg.Debounce, func() {
					select {
					case flush <- struct{}{}:
					default:
					}
				})
			} else {
				sendPending()
			}
		case err, ok := <-watchErrs:
			if !ok {
				return
			}
			slog.Error("watcher error", "error", err)
			select {
			case errCh <- err:
			default:
			}
		}
	}
}

func allowed(path string) bool {
	return constants.AllowedExt(constants.NormalizeExt(filepath.Ext(path)))
}

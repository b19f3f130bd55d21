package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce coalesces the burst of events editors produce on save.
const DefaultDebounce = 200 * time.Millisecond

// ReloadFunc receives each successfully reloaded configuration.
type ReloadFunc func(*Config)

// Watcher reloads a config file when it changes on disk.
// Files that fail to load or validate are logged and skipped; the previous
// configuration stays in effect.
type Watcher struct {
	path     string
	debounce time.Duration
	onReload ReloadFunc
	logger   zerolog.Logger

	lookupEnv func(string) (string, bool)

	mu      sync.Mutex
	timer   *time.Timer
	cancel  context.CancelFunc
	stopped chan struct{}
}

// NewWatcher creates a Watcher for path. A zero debounce uses DefaultDebounce.
// lookupEnv supplies the environment overrides applied to every reload; nil uses
// the process environment.
func NewWatcher(
	path string,
	debounce time.Duration,
	lookupEnv func(string) (string, bool),
	onReload ReloadFunc,
	logger zerolog.Logger,
) (*Watcher, error) {
	if path == "" {
		return nil, errors.New("watch path cannot be empty")
	}
	if onReload == nil {
		return nil, errors.New("reload callback cannot be nil")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	return &Watcher{
		path:      filepath.Clean(path),
		debounce:  debounce,
		onReload:  onReload,
		logger:    logger.With().Str("component", "config_watcher").Str("path", path).Logger(),
		lookupEnv: lookupEnv,
		stopped:   make(chan struct{}),
	}, nil
}

// Start begins watching. It returns once the underlying watch is registered.
// The parent directory is watched so that editors replacing the file on save
// keep being observed.
func (w *Watcher) Start(ctx context.Context) error {
	if _, err := os.Stat(w.path); err != nil {
		return err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err = fw.Add(filepath.Dir(w.path)); err != nil {
		_ = fw.Close()
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	go w.loop(watchCtx, fw)

	w.logger.Debug().Dur("debounce", w.debounce).Msg("watching config file")
	return nil
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher) {
	defer close(w.stopped)
	defer fw.Close()

	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			if w.timer != nil {
				w.timer.Stop()
			}
			w.mu.Unlock()
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.schedule(ctx)

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("config watcher error")
		}
	}
}

func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		if ctx.Err() != nil {
			return
		}
		w.reload()
	})
}

func (w *Watcher) reload() {
	cfg, err := LoadWithEnv(w.path, w.lookupEnv)
	if err != nil {
		w.logger.Warn().Err(err).Msg("config reload failed, keeping previous configuration")
		return
	}
	w.logger.Info().Msg("config reloaded")
	w.onReload(cfg)
}

// Stop ends the watch and waits up to timeout for the loop to exit.
func (w *Watcher) Stop(timeout time.Duration) error {
	if w.cancel == nil {
		return nil
	}
	w.cancel()
	select {
	case <-w.stopped:
		return nil
	case <-time.After(timeout):
		return errors.New("timeout waiting for config watcher to stop")
	}
}

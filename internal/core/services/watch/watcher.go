/*
Package watch implements the background watcher: it observes the Flatpak
installation directories for changes, debounces bursts of events, and runs a
non-interactive reconciliation pass plus stale pruning after each settle
window. Runs are serialized by construction; both triggers and the periodic
fallback rescan fire in the same loop.
*/
package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/fpsh/fpsh/internal/core/ports"
	"github.com/fpsh/fpsh/pkg/logging"
)

// Config holds watcher configuration.
type Config struct {
	SettleDelay    time.Duration // debounce window after the last event
	RescanInterval time.Duration // periodic fallback reconciliation
	Dirs           []string      // directories to observe
}

// DefaultConfig returns the default watcher configuration, observing the
// system-wide and per-user Flatpak application directories.
func DefaultConfig() Config {
	return Config{
		SettleDelay:    2 * time.Second,
		RescanInterval: 15 * time.Minute,
		Dirs: []string{
			"/var/lib/flatpak/app",
			filepath.Join(xdg.DataHome, "flatpak", "app"),
		},
	}
}

// Watcher drives reconciliation from installation events.
type Watcher struct {
	config  Config
	service ports.ReconciliationService
	opts    ports.SyncOptions
	logger  zerolog.Logger
}

// NewWatcher creates a new Watcher. It panics if the service is nil. The
// given options apply to every triggered pass and must be non-interactive.
func NewWatcher(config Config, service ports.ReconciliationService, opts ports.SyncOptions) *Watcher {
	if service == nil {
		panic("service cannot be nil")
	}
	opts.Interactive = false
	return &Watcher{
		config:  config,
		service: service,
		opts:    opts,
		logger:  logging.GetLogger("watch"),
	}
}

// Run starts the watcher loop. It blocks until the context is canceled.
// An initial pass runs at startup so the alias file catches up with changes
// that happened while the watcher was down.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	watching := 0
	for _, dir := range w.config.Dirs {
		if _, err := os.Stat(dir); err != nil {
			w.logger.Debug().Str("dir", dir).Msg("installation directory absent, not watched")
			continue
		}
		if err := fsw.Add(dir); err != nil {
			w.logger.Warn().Str("dir", dir).Err(err).Msg("could not watch directory")
			continue
		}
		watching++
	}
	w.logger.Info().Int("dirs", watching).Dur("settle", w.config.SettleDelay).Msg("watcher started")

	w.runPass(ctx)

	// The settle timer starts stopped; each relevant event rewinds it, so a
	// burst of events yields a single pass after the delay.
	settle := time.NewTimer(w.config.SettleDelay)
	if !settle.Stop() {
		<-settle.C
	}
	rescan := time.NewTicker(w.config.RescanInterval)
	defer rescan.Stop()

	for {
		select {
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) == 0 {
				continue
			}
			w.logger.Debug().Str("event", ev.String()).Msg("installation change detected")
			settle.Reset(w.config.SettleDelay)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("watch error")
		case <-settle.C:
			w.runPass(ctx)
		case <-rescan.C:
			w.runPass(ctx)
		case <-ctx.Done():
			w.logger.Info().Msg("watcher stopped")
			return nil
		}
	}
}

// runPass runs one reconcile-then-prune cycle and logs the outcome. Failures
// are logged, never fatal; the next trigger retries naturally.
func (w *Watcher) runPass(ctx context.Context) {
	report, err := w.service.SyncAll(ctx, w.opts)
	if err != nil {
		w.logger.Error().Err(err).Int("processed", len(report.Results)).Msg("reconciliation pass failed")
		return
	}
	stale, err := w.service.CheckStale(ctx, ports.SyncOptions{AssumeYes: true})
	if err != nil {
		w.logger.Error().Err(err).Msg("stale pruning failed")
		return
	}
	w.logger.Info().
		Int("created", report.Count(ports.ActionCreated)).
		Int("kept", report.Count(ports.ActionKept)).
		Int("skipped", report.Count(ports.ActionSkipped)+report.Count(ports.ActionSkippedConflict)).
		Int("pruned", len(stale.Removed)).
		Msg("reconciliation pass complete")
}

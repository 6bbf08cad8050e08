package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fpsh/fpsh/internal/core/domain/aliasfile"
	"github.com/fpsh/fpsh/internal/core/ports"
)

// stubService counts reconciliation passes driven by the watcher.
type stubService struct {
	mu         sync.Mutex
	syncCalls  int
	staleCalls int
	lastOpts   ports.SyncOptions
}

func (s *stubService) SyncAll(_ context.Context, opts ports.SyncOptions) (ports.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncCalls++
	s.lastOpts = opts
	return ports.Report{}, nil
}

func (s *stubService) CheckStale(context.Context, ports.SyncOptions) (ports.StaleReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staleCalls++
	return ports.StaleReport{}, nil
}

func (s *stubService) Add(context.Context, string, string, ports.SyncOptions) (ports.Result, error) {
	return ports.Result{}, nil
}
func (s *stubService) Rename(context.Context, string, string, ports.SyncOptions) error { return nil }
func (s *stubService) Remove(string) error                                             { return nil }
func (s *stubService) PurgeAll(ports.SyncOptions) (int, error)                         { return 0, nil }
func (s *stubService) Skip(string) error                                               { return nil }
func (s *stubService) Unskip(string) error                                             { return nil }
func (s *stubService) ListSkipped() ([]string, error)                                  { return nil, nil }
func (s *stubService) ListEntries() ([]aliasfile.Entry, int, error)                    { return nil, 0, nil }
func (s *stubService) Snapshot(string) error                                           { return nil }

func (s *stubService) counts() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncCalls, s.staleCalls
}

func (s *stubService) options() ports.SyncOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOpts
}

func TestNewWatcher_PanicsOnNilService(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewWatcher did not panic with nil service")
		}
	}()
	_ = NewWatcher(DefaultConfig(), nil, ports.SyncOptions{})
}

func TestNewWatcher_ForcesNonInteractive(t *testing.T) {
	w := NewWatcher(DefaultConfig(), &stubService{}, ports.SyncOptions{Interactive: true, AssumeYes: true})
	assert.False(t, w.opts.Interactive)
	assert.True(t, w.opts.AssumeYes)
}

func startWatcher(t *testing.T, config Config, service *stubService) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewWatcher(config, service, ports.SyncOptions{AssumeYes: true}).Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("watcher did not stop after cancel")
		}
	})
	return cancel
}

func TestWatcher_EventTriggersSettledPass(t *testing.T) {
	dir := t.TempDir()
	service := &stubService{}
	config := Config{
		SettleDelay:    50 * time.Millisecond,
		RescanInterval: time.Hour,
		Dirs:           []string{dir, filepath.Join(dir, "absent")},
	}
	startWatcher(t, config, service)

	// The initial catch-up pass runs before any event.
	require.Eventually(t, func() bool {
		syncs, _ := service.counts()
		return syncs == 1
	}, 2*time.Second, 10*time.Millisecond, "initial pass did not run")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "org.mozilla.firefox"), nil, 0644))

	require.Eventually(t, func() bool {
		syncs, stales := service.counts()
		return syncs == 2 && stales == 2
	}, 2*time.Second, 10*time.Millisecond, "event did not trigger a pass")

	assert.True(t, service.options().AssumeYes)
	assert.False(t, service.options().Interactive)
}

func TestWatcher_DebouncesEventBursts(t *testing.T) {
	dir := t.TempDir()
	service := &stubService{}
	config := Config{
		SettleDelay:    150 * time.Millisecond,
		RescanInterval: time.Hour,
		Dirs:           []string{dir},
	}
	startWatcher(t, config, service)

	require.Eventually(t, func() bool {
		syncs, _ := service.counts()
		return syncs == 1
	}, 2*time.Second, 10*time.Millisecond)

	// A burst of installs inside one settle window collapses to one pass.
	for _, name := range []string{"org.a.One", "org.b.Two", "org.c.Three"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
		time.Sleep(20 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		syncs, _ := service.counts()
		return syncs >= 2
	}, 2*time.Second, 10*time.Millisecond)

	// Allow a full extra settle window to pass before checking that no
	// further passes piled up.
	time.Sleep(2 * config.SettleDelay)
	syncs, _ := service.counts()
	assert.Equal(t, 2, syncs, "burst should settle into a single pass")
}

func TestWatcher_PeriodicRescan(t *testing.T) {
	service := &stubService{}
	config := Config{
		SettleDelay:    time.Hour,
		RescanInterval: 60 * time.Millisecond,
		Dirs:           []string{t.TempDir()},
	}
	startWatcher(t, config, service)

	// Initial pass plus at least two ticker-driven rescans, no events at all.
	require.Eventually(t, func() bool {
		syncs, _ := service.counts()
		return syncs >= 3
	}, 3*time.Second, 10*time.Millisecond, "periodic rescan did not fire")
}

package flatpak

import (
	"context"
	"errors"
	"testing"

	"github.com/fpsh/fpsh/internal/core/domain/app"
	"github.com/fpsh/fpsh/internal/core/testutil"
)

func TestNewInventory_PanicsOnNilExecutor(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewInventory did not panic with nil executor")
		}
	}()
	_ = NewInventory(nil)
}

func TestInventory_ListInstalled(t *testing.T) {
	tests := []struct {
		name     string
		stdout   string
		execErr  error
		expected []app.InstalledApp
		wantErr  bool
	}{
		{
			name:   "parses tab-separated listing",
			stdout: "org.mozilla.firefox\tFirefox\nmd.obsidian.Obsidian\tObsidian\n",
			expected: []app.InstalledApp{
				{ID: "org.mozilla.firefox", DisplayName: "Firefox"},
				{ID: "md.obsidian.Obsidian", DisplayName: "Obsidian"},
			},
		},
		{
			name:   "missing display name column",
			stdout: "org.gnome.Calculator\n",
			expected: []app.InstalledApp{
				{ID: "org.gnome.Calculator", DisplayName: ""},
			},
		},
		{
			name:   "drops malformed identifiers",
			stdout: "org.mozilla.firefox\tFirefox\nnot an id\tBroken\nsingleword\tAlso Broken\n",
			expected: []app.InstalledApp{
				{ID: "org.mozilla.firefox", DisplayName: "Firefox"},
			},
		},
		{
			name:   "ignores blank lines and CR line endings",
			stdout: "org.mozilla.firefox\tFirefox\r\n\n   \n",
			expected: []app.InstalledApp{
				{ID: "org.mozilla.firefox", DisplayName: "Firefox"},
			},
		},
		{
			name:     "empty listing",
			stdout:   "",
			expected: nil,
		},
		{
			name:    "executor failure",
			execErr: errors.New("command not found"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor := &testutil.MockCommandExecutor{
				ExecuteFunc: func(_ context.Context, name string, args ...string) (string, string, error) {
					if name != "flatpak" {
						t.Errorf("expected flatpak binary, got %q", name)
					}
					return tt.stdout, "", tt.execErr
				},
			}
			inv := NewInventory(executor)

			apps, err := inv.ListInstalled(context.Background())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				var invErr *InventoryError
				if !errors.As(err, &invErr) {
					t.Errorf("expected *InventoryError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(apps) != len(tt.expected) {
				t.Fatalf("expected %d apps, got %d: %v", len(tt.expected), len(apps), apps)
			}
			for i, want := range tt.expected {
				if apps[i] != want {
					t.Errorf("app %d: expected %+v, got %+v", i, want, apps[i])
				}
			}
		})
	}
}

func TestInventory_DisplayName(t *testing.T) {
	executor := &testutil.MockCommandExecutor{
		ExecuteFunc: func(context.Context, string, ...string) (string, string, error) {
			return "org.mozilla.firefox\tFirefox\n", "", nil
		},
	}
	inv := NewInventory(executor)

	name, err := inv.DisplayName(context.Background(), "org.mozilla.firefox")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Firefox" {
		t.Errorf("expected Firefox, got %q", name)
	}

	name, err = inv.DisplayName(context.Background(), "org.gnome.Calculator")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "" {
		t.Errorf("expected empty name for unlisted app, got %q", name)
	}
}

func TestInventory_Exists(t *testing.T) {
	tests := []struct {
		name     string
		appID    string
		execErr  error
		expected bool
	}{
		{name: "installed", appID: "org.mozilla.firefox", expected: true},
		{name: "not installed", appID: "org.gone.App", execErr: errors.New("exit status 1"), expected: false},
		{name: "invalid id short-circuits", appID: "not an id", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			executor := &testutil.MockCommandExecutor{
				ExecuteFunc: func(_ context.Context, _ string, args ...string) (string, string, error) {
					called = true
					return "", "", tt.execErr
				},
			}
			inv := NewInventory(executor)

			got, err := inv.Exists(context.Background(), tt.appID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
			if tt.name == "invalid id short-circuits" && called {
				t.Error("executor should not run for an invalid id")
			}
		})
	}
}

func TestInventory_ExistsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	executor := &testutil.MockCommandExecutor{
		ExecuteFunc: func(ctx context.Context, _ string, _ ...string) (string, string, error) {
			return "", "", ctx.Err()
		},
	}
	inv := NewInventory(executor)

	_, err := inv.Exists(ctx, "org.mozilla.firefox")
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	var invErr *InventoryError
	if !errors.As(err, &invErr) {
		t.Errorf("expected *InventoryError, got %T", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected wrapped context.Canceled, got %v", err)
	}
}

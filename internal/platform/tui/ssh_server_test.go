package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/realm-runner/internal/config"
)

func testServerConfig(t *testing.T, dbPath string) SSHServerConfig {
	t.Helper()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")
	cfg.DBPath = dbPath
	cfg.Logger = log.New(io.Discard)
	return cfg
}

func TestNewSSHServerWithoutStorage(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	srv, err := NewSSHServer(testServerConfig(t, filepath.Join(blocker, "scores.db")))
	if err != nil {
		t.Fatalf("NewSSHServer() should continue without storage: %v", err)
	}
	if srv.store != nil {
		t.Error("store should be nil when the database cannot be opened")
	}
	if srv.prefs() != nil {
		t.Error("prefs() must be a nil interface without a store")
	}
}

func TestNewSSHServerSharesStore(t *testing.T) {
	srv, err := NewSSHServer(testServerConfig(t, filepath.Join(t.TempDir(), "scores.db")))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	t.Cleanup(func() { srv.store.Close() })

	if srv.prefs() == nil {
		t.Fatal("prefs() should expose the shared store")
	}
	if err := srv.prefs().SetFloat("k", 3); err != nil {
		t.Errorf("SetFloat() through prefs failed: %v", err)
	}
}

func TestNewSSHServerRejectsInvalidConfig(t *testing.T) {
	cfg := testServerConfig(t, filepath.Join(t.TempDir(), "scores.db"))
	cfg.Runner = config.DefaultRunnerConfig()
	cfg.Runner.Templates = nil
	if _, err := NewSSHServer(cfg); err == nil {
		t.Error("NewSSHServer() should reject an invalid runner config")
	}
}

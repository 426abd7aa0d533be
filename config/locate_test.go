package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cs2tools/crosshair-kit/errors"
)

func TestFindInstallDir(t *testing.T) {
	tmp := t.TempDir()
	without := filepath.Join(tmp, "plain")
	with := filepath.Join(tmp, "steam")
	if err := os.MkdirAll(without, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(with, "userdata"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := findInstallDir([]string{without, with})
	if err != nil {
		t.Fatalf("findInstallDir: %v", err)
	}
	if got != with {
		t.Errorf("install dir = %q, want %q", got, with)
	}
}

func TestFindInstallDirNotFound(t *testing.T) {
	_, err := findInstallDir([]string{filepath.Join(t.TempDir(), "missing")})
	if err == nil {
		t.Fatal("expected not_found error")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseLocate, Kind: errors.KindNotFound}) {
		t.Errorf("error = %v, want locate/not_found", err)
	}
}

func TestConfigDir(t *testing.T) {
	got := ConfigDir("/home/u/.steam/steam", "12345678")
	want := filepath.Join("/home/u/.steam/steam", "userdata", "12345678", "730", "local", "cfg")
	if got != want {
		t.Errorf("ConfigDir = %q, want %q", got, want)
	}
}

package config

import (
	"os"
	"path/filepath"

	"github.com/cs2tools/crosshair-kit/errors"
)

// gameAppID is the Steam application ID the config tree lives under.
const gameAppID = "730"

// FindInstallDir probes the conventional Linux Steam locations under the
// user's home directory and returns the first one containing a userdata
// tree.
func FindInstallDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.NotFound(errors.PhaseLocate, "home directory not resolvable")
	}
	return findInstallDir([]string{
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".local", "share", "Steam"),
		filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", ".local", "share", "Steam"),
	})
}

func findInstallDir(candidates []string) (string, error) {
	for _, c := range candidates {
		info, err := os.Stat(filepath.Join(c, "userdata"))
		if err == nil && info.IsDir() {
			return c, nil
		}
	}
	return "", errors.NotFound(errors.PhaseLocate, "steam installation not found")
}

// ConfigDir returns the game config directory for an account inside an
// install directory. It builds the path only; the directory may not exist.
func ConfigDir(installDir, accountID string) string {
	return filepath.Join(installDir, "userdata", accountID, gameAppID, "local", "cfg")
}

package game

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"beammm/internal/domain"
)

const (
	gameDirName = "BeamNG.drive"
	homeDirName = "BeamMM"
	modsDirName = "mods"
	presetsDir  = "presets"
	dirMode     = 0o755
)

// Dirs holds the per-user base directories searched for the game.
//
// LocalData corresponds to %LocalAppData% on Windows. RoamingData corresponds
// to %AppData%; on other platforms both usually point at the same place.
type Dirs struct {
	LocalData   string
	RoamingData string
}

// UserDirs resolves the current user's base directories from the environment.
func UserDirs() Dirs {
	switch runtime.GOOS {
	case "windows":
		return Dirs{LocalData: os.Getenv("LOCALAPPDATA"), RoamingData: os.Getenv("APPDATA")}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return Dirs{}
		}
		d := filepath.Join(home, "Library", "Application Support")
		return Dirs{LocalData: d, RoamingData: d}
	default:
		d := os.Getenv("XDG_DATA_HOME")
		if d == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return Dirs{}
			}
			d = filepath.Join(home, ".local", "share")
		}
		return Dirs{LocalData: d, RoamingData: d}
	}
}

// DataDir returns the game's data directory.
//
// A non-empty custom directory is returned as-is if it exists, otherwise a
// *domain.DirNotFoundError is returned. Without one, <LocalData>/BeamNG.drive
// and then <RoamingData>/BeamNG.drive are tried.
func (d Dirs) DataDir(custom string) (string, error) {
	if custom != "" {
		ok, err := exists(custom)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", &domain.DirNotFoundError{Dir: custom}
		}
		return custom, nil
	}
	for _, base := range []string{d.LocalData, d.RoamingData} {
		if base == "" {
			continue
		}
		dir := filepath.Join(base, gameDirName)
		if ok, _ := exists(dir); ok {
			return dir, nil
		}
	}
	return "", domain.ErrGameDirNotFound
}

// HomeDir returns beammm's own directory, <LocalData>/BeamMM, creating it if needed.
func (d Dirs) HomeDir() (string, error) {
	if d.LocalData == "" {
		return "", domain.ErrMissingLocalAppData
	}
	return ensureDir(filepath.Join(d.LocalData, homeDirName))
}

// ModsDir returns <dataDir>/<version>/mods. Both dataDir and the mods
// directory must already exist.
func ModsDir(dataDir, version string) (string, error) {
	ok, err := exists(dataDir)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &domain.DirNotFoundError{Dir: dataDir}
	}
	dir := filepath.Join(dataDir, version, modsDirName)
	ok, err = exists(dir)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &domain.DirNotFoundError{Dir: dir}
	}
	return dir, nil
}

// PresetsDir returns <home>/presets, creating it if needed.
func PresetsDir(home string) (string, error) {
	return ensureDir(filepath.Join(home, presetsDir))
}

func ensureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return "", err
	}
	return dir, nil
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"beammm/internal/domain"
)

const versionFile = "version.txt"

// Version returns the game's major.minor version, e.g. "0.32".
//
// It reads version.txt in dataDir when present. Otherwise it falls back to
// the highest version-named subdirectory of dataDir.
func Version(dataDir string) (string, error) {
	ok, err := exists(dataDir)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &domain.DirNotFoundError{Dir: dataDir}
	}

	b, err := os.ReadFile(filepath.Join(dataDir, versionFile))
	switch {
	case err == nil:
		major, minor, ok := parseMajorMinor(strings.TrimSpace(string(b)))
		if !ok {
			return "", fmt.Errorf("%w: malformed %s", domain.ErrVersion, versionFile)
		}
		return fmt.Sprintf("%d.%d", major, minor), nil
	case !errors.Is(err, os.ErrNotExist):
		return "", err
	}

	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return "", err
	}
	best, bestMajor, bestMinor := "", -1, -1
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		major, minor, ok := parseMajorMinor(e.Name())
		if !ok {
			continue
		}
		if major > bestMajor || (major == bestMajor && minor > bestMinor) {
			best, bestMajor, bestMinor = e.Name(), major, minor
		}
	}
	if best == "" {
		return "", fmt.Errorf("%w: no version directories in %s", domain.ErrVersion, dataDir)
	}
	return best, nil
}

// parseMajorMinor extracts the first two numeric components of a dotted version.
func parseMajorMinor(s string) (major, minor int, ok bool) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return 0, 0, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 0 {
		return 0, 0, false
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil || minor < 0 {
		return 0, 0, false
	}
	return major, minor, true
}

package app_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"beammm/internal/app"
	"beammm/internal/domain"
	"beammm/internal/game"
)

func TestConfig_Defaults(t *testing.T) {
	for _, k := range []string{"BEAMMM_HOME", "BEAMMM_DATA_DIR", "BEAMMM_LOG_LEVEL", "BEAMMM_LOG_FORMAT", "BEAMMM_ASSUME_YES"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := app.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, app.Config{LogLevel: "warn", LogFormat: "text"}, cfg)
	require.NoError(t, cfg.Validate())
}

func TestConfig_FromEnvAndDotenv(t *testing.T) {
	t.Setenv("BEAMMM_HOME", "/from/env")
	t.Setenv("BEAMMM_ASSUME_YES", "true")
	// Unset but restored after the test, so the dotenv file can supply it.
	t.Setenv("BEAMMM_LOG_LEVEL", "")
	os.Unsetenv("BEAMMM_LOG_LEVEL")

	envFile := filepath.Join(t.TempDir(), "test.env")
	content := "BEAMMM_LOG_LEVEL=debug\nBEAMMM_HOME=/from/dotenv\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := app.LoadConfig(envFile)
	require.NoError(t, err)
	require.Equal(t, "/from/env", cfg.Home, "process environment wins over dotenv")
	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.AssumeYes)
}

func TestConfig_Validate(t *testing.T) {
	good := app.Config{LogLevel: "info", LogFormat: "json"}
	require.NoError(t, good.Validate())

	bad := good
	bad.LogLevel = "loud"
	require.ErrorContains(t, bad.Validate(), "invalid log level")

	bad = good
	bad.LogFormat = "xml"
	require.ErrorContains(t, bad.Validate(), "invalid log format")
}

func TestNewLogger_LevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	log := app.NewLogger("info", "json", &buf)

	log.Debug("hidden")
	log.Info("shown", "k", "v")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	require.Equal(t, "shown", rec["msg"])
	require.Equal(t, "v", rec["k"])

	buf.Reset()
	app.NewLogger("bogus", "text", &buf).Info("dropped")
	require.Empty(t, buf.String(), "unknown level falls back to warn")
}

// fixture lays out a game data dir with one version and a mod database.
func fixture(t *testing.T, mods map[string]bool) (app.Config, string) {
	t.Helper()
	data := t.TempDir()
	modsDir := filepath.Join(data, "0.32", "mods")
	require.NoError(t, os.MkdirAll(modsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(data, "version.txt"), []byte("0.32.4.0"), 0o644))

	entries := map[string]any{}
	for id, active := range mods {
		entries[id] = map[string]any{"active": active}
	}
	b, err := json.Marshal(map[string]any{"mods": entries})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(modsDir, "db.json"), b, 0o644))

	cfg := app.Config{Home: t.TempDir(), DataDir: data, LogLevel: "warn", LogFormat: "text"}
	return cfg, modsDir
}

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestNewWire_ResolvesDirectories(t *testing.T) {
	cfg, modsDir := fixture(t, map[string]bool{"a": true})

	w, err := app.NewWire(cfg, game.Dirs{}, quiet())
	require.NoError(t, err)
	require.Equal(t, "0.32", w.Version)
	require.Equal(t, modsDir, w.ModsDir)
	require.Equal(t, filepath.Join(cfg.Home, "presets"), w.PresetsDir)
	require.DirExists(t, w.PresetsDir)
}

func TestNewWire_DiscoversHomeAndData(t *testing.T) {
	local := t.TempDir()
	_, err := app.NewWire(app.Config{}, game.Dirs{LocalData: local}, quiet())
	require.ErrorIs(t, err, domain.ErrGameDirNotFound)
	require.DirExists(t, filepath.Join(local, "BeamMM", "presets"))
}

func TestCommit_ReportsAndRecovers(t *testing.T) {
	cfg, modsDir := fixture(t, map[string]bool{"a": false, "b": true})
	w, err := app.NewWire(cfg, game.Dirs{}, quiet())
	require.NoError(t, err)
	a := app.New(w.Mods, w.Presets, quiet())

	_, err = a.Presets.CreatePreset("ok", []domain.ModID{"a"})
	require.NoError(t, err)
	_, err = a.Presets.CreatePreset("stale", []domain.ModID{"b", "removed"})
	require.NoError(t, err)
	require.NoError(t, a.Presets.EnablePreset("ok"))
	require.NoError(t, a.Presets.EnablePreset("stale"))

	var errOut bytes.Buffer
	require.NoError(t, a.Commit(&errOut))

	report := errOut.String()
	require.Contains(t, report, "Failed to apply presets:\n  - stale\n")
	require.Contains(t, report, "Because of the following missing mods:\n  - removed\n")
	require.Contains(t, report, "Disabling these presets.")

	// The saved database reflects the reconciled state.
	b, err := os.ReadFile(filepath.Join(modsDir, "db.json"))
	require.NoError(t, err)
	var saved domain.ModRegistry
	require.NoError(t, json.Unmarshal(b, &saved))
	require.Equal(t, []domain.ModID{"a"}, saved.ActiveMods())

	errOut.Reset()
	require.NoError(t, a.Commit(&errOut))
	require.Empty(t, errOut.String())
}

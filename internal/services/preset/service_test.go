package preset_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"beammm/internal/domain"
	presetsvc "beammm/internal/services/preset"
	"beammm/internal/store"
)

func newService(t *testing.T) (*presetsvc.Service, *store.PresetFileStore) {
	t.Helper()
	ps := store.NewPresetFileStore(t.TempDir())
	return presetsvc.New(ps, slog.New(slog.NewTextHandler(io.Discard, nil))), ps
}

func registry(active map[domain.ModID]bool) *domain.ModRegistry {
	return domain.NewModRegistry(active)
}

func isActive(t *testing.T, reg *domain.ModRegistry, id domain.ModID) bool {
	t.Helper()
	active, ok := reg.IsModActive(id)
	require.True(t, ok, "mod %s unknown", id)
	return active
}

func TestCreatePreset(t *testing.T) {
	svc, _ := newService(t)

	p, err := svc.CreatePreset("race", []domain.ModID{"a", "b"})
	require.NoError(t, err)
	require.False(t, p.Enabled())

	_, err = svc.CreatePreset("race", nil)
	var exists *domain.PresetExistsError
	require.ErrorAs(t, err, &exists)
	require.Equal(t, domain.PresetName("race"), exists.Preset)

	shown, err := svc.ShowPreset("race")
	require.NoError(t, err)
	require.Equal(t, []domain.ModID{"a", "b"}, shown.Mods())
}

func TestListPresets(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.CreatePreset("preset10", []domain.ModID{"a"})
	require.NoError(t, err)
	_, err = svc.CreatePreset("Preset2", nil)
	require.NoError(t, err)
	require.NoError(t, svc.EnablePreset("Preset2"))

	got, err := svc.ListPresets()
	require.NoError(t, err)
	require.Equal(t, []domain.PresetStatus{
		{Name: "Preset2", Enabled: true, Mods: 0},
		{Name: "preset10", Enabled: false, Mods: 1},
	}, got)
}

func TestAddRemoveMods(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.CreatePreset("p", []domain.ModID{"a"})
	require.NoError(t, err)

	require.NoError(t, svc.AddMods("p", []domain.ModID{"b", "unknown"}))
	require.NoError(t, svc.RemoveMods("p", []domain.ModID{"a", "never-there"}))

	p, err := svc.ShowPreset("p")
	require.NoError(t, err)
	require.Equal(t, []domain.ModID{"b", "unknown"}, p.Mods())

	var mp *domain.MissingPresetError
	require.ErrorAs(t, svc.AddMods("ghost", []domain.ModID{"a"}), &mp)
}

func TestDeletePreset(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.CreatePreset("p", nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeletePreset("p"))

	var mp *domain.MissingPresetError
	require.ErrorAs(t, svc.DeletePreset("p"), &mp)
}

func TestEnablePreset_RecordsIntentOnly(t *testing.T) {
	svc, _ := newService(t)
	reg := registry(map[domain.ModID]bool{"a": false})
	_, err := svc.CreatePreset("p", []domain.ModID{"a"})
	require.NoError(t, err)

	require.NoError(t, svc.EnablePreset("p"))
	require.False(t, isActive(t, reg, "a"))

	require.NoError(t, svc.ApplyPresets(reg))
	require.True(t, isActive(t, reg, "a"))
}

func TestDisablePreset(t *testing.T) {
	svc, _ := newService(t)
	reg := registry(map[domain.ModID]bool{"a": true, "b": true})
	_, err := svc.CreatePreset("p", []domain.ModID{"a"})
	require.NoError(t, err)
	require.NoError(t, svc.EnablePreset("p"))

	require.NoError(t, svc.DisablePreset("p", reg))

	require.False(t, isActive(t, reg, "a"))
	require.True(t, isActive(t, reg, "b"))
	p, err := svc.ShowPreset("p")
	require.NoError(t, err)
	require.False(t, p.Enabled())
}

func TestDisablePreset_MissingModKeepsPresetEnabled(t *testing.T) {
	svc, _ := newService(t)
	reg := registry(map[domain.ModID]bool{"a": true})
	_, err := svc.CreatePreset("p", []domain.ModID{"a", "x"})
	require.NoError(t, err)
	require.NoError(t, svc.EnablePreset("p"))

	err = svc.DisablePreset("p", reg)

	var missing *domain.MissingModsError
	require.ErrorAs(t, err, &missing)
	require.True(t, isActive(t, reg, "a"))
	p, err := svc.ShowPreset("p")
	require.NoError(t, err)
	require.True(t, p.Enabled(), "failed disable must not be persisted")
}

func TestApplyPresets_RecoversFromMissingMods(t *testing.T) {
	svc, _ := newService(t)
	reg := registry(map[domain.ModID]bool{"a": false, "shared": false, "c": true})

	_, err := svc.CreatePreset("good", []domain.ModID{"a", "shared"})
	require.NoError(t, err)
	_, err = svc.CreatePreset("broken", []domain.ModID{"shared", "c", "gone"})
	require.NoError(t, err)
	require.NoError(t, svc.EnablePreset("good"))
	require.NoError(t, svc.EnablePreset("broken"))

	err = svc.ApplyPresets(reg)

	var failed *domain.PresetsFailedError
	require.ErrorAs(t, err, &failed)
	require.Equal(t, []domain.PresetName{"broken"}, failed.Presets)
	require.Equal(t, []domain.ModID{"gone"}, failed.Mods)

	// The broken preset is persisted as disabled.
	broken, err := svc.ShowPreset("broken")
	require.NoError(t, err)
	require.False(t, broken.Enabled())

	// Its known mods are off unless another enabled preset wants them.
	require.True(t, isActive(t, reg, "a"))
	require.True(t, isActive(t, reg, "shared"))
	require.False(t, isActive(t, reg, "c"))

	// The next pass is clean.
	require.NoError(t, svc.ApplyPresets(reg))
}

func TestApplyPresets_NoPresets(t *testing.T) {
	svc, _ := newService(t)
	reg := registry(map[domain.ModID]bool{"a": true})

	require.NoError(t, svc.ApplyPresets(reg))
	require.True(t, isActive(t, reg, "a"))
}

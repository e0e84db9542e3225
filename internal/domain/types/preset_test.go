package types_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"beammm/internal/domain/types"
)

// spyActivator records calls and fails for ids in missing.
type spyActivator struct {
	calls   int
	missing map[types.ModID]bool
	off     []types.ModID
}

func (s *spyActivator) SetModActive(id types.ModID, active bool) error {
	s.calls++
	if s.missing[id] {
		return &types.MissingModsError{IDs: []types.ModID{id}}
	}
	if !active {
		s.off = append(s.off, id)
	}
	return nil
}

func (s *spyActivator) SetModsActive(ids []types.ModID, active bool) error {
	s.calls++
	for _, id := range ids {
		if s.missing[id] {
			return &types.MissingModsError{IDs: []types.ModID{id}}
		}
	}
	if !active {
		s.off = append(s.off, ids...)
	}
	return nil
}

func TestNewPreset_DisabledAndCopied(t *testing.T) {
	mods := []types.ModID{"a", "b"}
	p := types.NewPreset("p", mods)
	mods[0] = "changed"

	require.Equal(t, types.PresetName("p"), p.Name())
	require.False(t, p.Enabled())
	require.Equal(t, []types.ModID{"a", "b"}, p.Mods())

	got := p.Mods()
	got[0] = "changed"
	require.Equal(t, []types.ModID{"a", "b"}, p.Mods(), "Mods must return a copy")
}

func TestPreset_AddRemove(t *testing.T) {
	p := types.NewPreset("p", nil)

	p.AddMod("a")
	p.AddMods([]types.ModID{"b", "c", "a"})
	require.Equal(t, []types.ModID{"a", "b", "c", "a"}, p.Mods())

	p.RemoveMod("a")
	require.Equal(t, []types.ModID{"b", "c"}, p.Mods())

	p.RemoveMod("missing")
	p.RemoveMods([]types.ModID{"c", "nope"})
	require.Equal(t, []types.ModID{"b"}, p.Mods())
}

func TestPreset_EnableDoesNotTouchRegistry(t *testing.T) {
	reg := newRegistry()
	before := snapshot(reg)
	p := types.NewPreset("p", []types.ModID{"b", "c"})

	p.Enable()

	require.True(t, p.Enabled())
	require.Equal(t, before, snapshot(reg))
}

func TestPreset_DisableDeactivatesEagerly(t *testing.T) {
	reg := types.NewModRegistry(map[types.ModID]bool{"a": true, "b": true, "c": true})
	p := types.NewPreset("p", []types.ModID{"a", "b"})
	p.Enable()

	require.NoError(t, p.Disable(reg))

	require.False(t, p.Enabled())
	require.Equal(t, map[types.ModID]bool{"a": false, "b": false, "c": true}, snapshot(reg))
}

func TestPreset_DisableWithMissingModChangesNothing(t *testing.T) {
	reg := types.NewModRegistry(map[types.ModID]bool{"a": true, "b": true})
	before := snapshot(reg)
	p := types.NewPreset("p", []types.ModID{"a", "x"})
	p.Enable()

	err := p.Disable(reg)

	var missing *types.MissingModsError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, []types.ModID{"x"}, missing.IDs)
	require.True(t, p.Enabled())
	require.Equal(t, before, snapshot(reg))
}

func TestPreset_ForceDisableSkipsUnknownMods(t *testing.T) {
	reg := types.NewModRegistry(map[types.ModID]bool{"a": true, "b": true, "c": true})
	p := types.NewPreset("p", []types.ModID{"x", "a", "y", "b"})
	p.Enable()

	p.ForceDisable(reg)

	require.False(t, p.Enabled())
	require.Equal(t, map[types.ModID]bool{"a": false, "b": false, "c": true}, snapshot(reg))
}

func TestPreset_ForceDisableUsesPerModCalls(t *testing.T) {
	spy := &spyActivator{missing: map[types.ModID]bool{"x": true}}
	p := types.NewPreset("p", []types.ModID{"a", "x", "b"})

	p.ForceDisable(spy)

	require.Equal(t, 3, spy.calls)
	require.Equal(t, []types.ModID{"a", "b"}, spy.off)
}

func TestPresetJSON_RoundTripKeepsUnknownFields(t *testing.T) {
	const doc = `{"name":"race","mods":["a","b"],"enabled":true,"note":"keep me","meta":{"v":2}}`

	var p types.Preset
	require.NoError(t, json.Unmarshal([]byte(doc), &p))
	require.Equal(t, types.PresetName("race"), p.Name())
	require.Equal(t, []types.ModID{"a", "b"}, p.Mods())
	require.True(t, p.Enabled())

	p.AddMod("c")
	out, err := json.Marshal(&p)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	want := map[string]any{
		"name":    "race",
		"mods":    []any{"a", "b", "c"},
		"enabled": true,
		"note":    "keep me",
		"meta":    map[string]any{"v": float64(2)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("preset JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestPresetJSON_EmptyModsEncodeAsArray(t *testing.T) {
	out, err := json.Marshal(types.NewPreset("empty", nil))
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"empty","mods":[],"enabled":false}`, string(out))
}

func TestPresetsFailedError_Message(t *testing.T) {
	err := &types.PresetsFailedError{
		Mods:    []types.ModID{"x", "y"},
		Presets: []types.PresetName{"p1", "p2"},
	}
	require.Equal(t, "presets failed: p1, p2 (missing mods: x, y)", err.Error())
}

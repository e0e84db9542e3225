package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"beammm/internal/domain"
)

// App is what commands work with.
type App struct {
	Mods    domain.ModService
	Presets domain.PresetService
	Log     *slog.Logger
}

// New returns an App over the given services.
func New(mods domain.ModService, presets domain.PresetService, log *slog.Logger) *App {
	return &App{
		Mods:    mods,
		Presets: presets,
		Log:     log,
	}
}

// Commit reconciles all presets into the working registry and saves it.
//
// Presets that failed to apply have already been disabled by the preset
// service; they are reported on errOut and do not fail the commit.
func (a *App) Commit(errOut io.Writer) error {
	reg, err := a.Mods.Registry()
	if err != nil {
		return err
	}

	err = a.Presets.ApplyPresets(reg)
	var failed *domain.PresetsFailedError
	switch {
	case errors.As(err, &failed):
		reportFailed(errOut, failed)
	case err != nil:
		return err
	}

	return a.Mods.SaveRegistry()
}

func reportFailed(w io.Writer, failed *domain.PresetsFailedError) {
	fmt.Fprintln(w, "Failed to apply presets:")
	for _, p := range failed.Presets {
		fmt.Fprintf(w, "  - %s\n", p)
	}
	fmt.Fprintln(w, "Because of the following missing mods:")
	for _, m := range failed.Mods {
		fmt.Fprintf(w, "  - %s\n", m)
	}
	fmt.Fprintln(w, "Disabling these presets.")
}

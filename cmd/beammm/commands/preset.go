package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"beammm/internal/domain"
	"beammm/internal/prompt"
)

func presetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage mod presets",
	}
	cmd.AddCommand(
		presetListCmd(),
		presetShowCmd(),
		presetCreateCmd(),
		presetDeleteCmd(),
		presetAddCmd(),
		presetRemoveCmd(),
		presetEnableCmd(),
		presetDisableCmd(),
	)
	return cmd
}

func presetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "list",
		Short:       "List presets",
		Args:        cobra.NoArgs,
		Annotations: skipCommitAnnotation(),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := appCtx.Presets.ListPresets()
			if err != nil {
				return err
			}
			for _, p := range presets {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d mods)\n", status(p.Enabled), p.Name, p.Mods)
			}
			return nil
		},
	}
}

func presetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "show <preset>",
		Short:       "Show a preset's mods",
		Args:        cobra.ExactArgs(1),
		Annotations: skipCommitAnnotation(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := appCtx.Presets.ShowPreset(domain.PresetName(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", status(p.Enabled()), p.Name())
			for _, m := range p.Mods() {
				fmt.Fprintf(out, "  - %s\n", m)
			}
			return nil
		},
	}
}

func presetCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <preset> [mod]...",
		Short: "Create a preset",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := domain.PresetName(args[0])
			p, err := appCtx.Presets.CreatePreset(name, domain.ModIDs(args[1:]))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Preset '%s' created successfully.\n", name)
			if mods := p.Mods(); len(mods) > 0 {
				fmt.Fprintln(out, "With mods:")
				for _, m := range mods {
					fmt.Fprintf(out, "  - %s\n", m)
				}
			} else {
				fmt.Fprintln(out, "No mods added to the preset.")
			}
			fmt.Fprintln(out, "Use 'beammm preset enable' and 'beammm preset disable' to switch the preset.")
			fmt.Fprintln(out, "Use 'beammm preset add' and 'beammm preset remove' to change its mods.")
			return nil
		},
	}
}

func presetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <preset>",
		Short: "Permanently delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := domain.PresetName(args[0])
			ok, err := prompt.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
				fmt.Sprintf("Are you sure you want to delete preset '%s'?", name), false, assumeYes)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			return appCtx.Presets.DeletePreset(name)
		},
	}
}

func presetAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <preset> <mod>...",
		Short: "Add mods to a preset",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Presets.AddMods(domain.PresetName(args[0]), domain.ModIDs(args[1:]))
		},
	}
}

func presetRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <preset> <mod>...",
		Short: "Remove mods from a preset",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Presets.RemoveMods(domain.PresetName(args[0]), domain.ModIDs(args[1:]))
		},
	}
}

func presetEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable <preset>",
		Short: "Enable a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Presets.EnablePreset(domain.PresetName(args[0]))
		},
	}
}

func presetDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable <preset>",
		Short: "Disable a preset and switch its mods off",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := appCtx.Mods.Registry()
			if err != nil {
				return err
			}
			name := domain.PresetName(args[0])
			if err := appCtx.Presets.DisablePreset(name, reg); err != nil {
				return fmt.Errorf("disabling preset %q: %w", name, err)
			}
			return nil
		},
	}
}

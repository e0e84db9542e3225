package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"beammm/internal/domain"
	"beammm/internal/prompt"
)

func modsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mods",
		Short: "List, enable and disable installed mods",
	}
	cmd.AddCommand(modsListCmd(), modsSetCmd(true), modsSetCmd(false))
	return cmd
}

func modsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "list",
		Short:       "List installed mods",
		Args:        cobra.NoArgs,
		Annotations: skipCommitAnnotation(),
		RunE: func(cmd *cobra.Command, args []string) error {
			mods, err := appCtx.Mods.ListMods()
			if err != nil {
				return err
			}
			for _, m := range mods {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", status(m.Active), m.ID)
			}
			return nil
		},
	}
}

// modsSetCmd builds "enable" or "disable". The single argument "all"
// (any case) targets every installed mod after confirmation.
func modsSetCmd(active bool) *cobra.Command {
	verb := "disable"
	if active {
		verb = "enable"
	}
	return &cobra.Command{
		Use:   verb + " <mod>... | all",
		Short: strings.ToUpper(verb[:1]) + verb[1:] + " mods",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.EqualFold(args[0], "all") {
				// Defaults to yes for enable, no for disable.
				ok, err := prompt.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
					fmt.Sprintf("Are you sure you would like to %s all mods?", verb), active, assumeYes)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
				return appCtx.Mods.SetAllModsActive(active)
			}
			return appCtx.Mods.SetModsActive(domain.ModIDs(args), active)
		},
	}
}

func status(on bool) string {
	if on {
		return "enabled "
	}
	return "disabled"
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// applyCmd commits on its own so it can report once the database is saved.
func applyCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "apply",
		Short:       "Activate the mods of every enabled preset",
		Args:        cobra.NoArgs,
		Annotations: skipCommitAnnotation(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Commit(cmd.ErrOrStderr()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Presets applied.")
			return nil
		},
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "fingerprint",
		Short:       "Print a fingerprint of the active mod set",
		Args:        cobra.NoArgs,
		Annotations: skipCommitAnnotation(),
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := appCtx.Mods.FingerprintActive()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"modelget/internal/manifest"
)

func buildValidateCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [manifest-file]",
		Short: "Check manifest integrity without installing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.ManifestPath
			if len(args) == 1 {
				path = args[0]
			}
			man, err := manifest.Resolve(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "manifest ok: %d groups, %d entries\n", len(man.Groups), len(man.Entries()))
			return nil
		},
	}
}

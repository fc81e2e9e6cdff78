package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"modelget/internal/installer"
	"modelget/internal/manifest"
)

func buildPlanCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show what an install would do, without touching the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			man, err := manifest.Resolve(cfg.ManifestPath)
			if err != nil {
				return err
			}
			ins, err := installer.New(man, installer.Config{ModelsDir: cfg.ModelsDir})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			var fetch, present int
			for _, it := range ins.Plan() {
				if it.Present {
					present++
					fmt.Fprintf(out, "SKIP  %s\n", it.Path)
					continue
				}
				fetch++
				fmt.Fprintf(out, "FETCH %s %s\n", it.Path, it.URL)
			}
			fmt.Fprintf(out, "plan: %d to fetch, %d present\n", fetch, present)
			return nil
		},
	}
}

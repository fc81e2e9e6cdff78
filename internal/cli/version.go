package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is stamped into the User-Agent and the version subcommand.
const Version = "0.1.0"

func userAgent() string { return "modelget/" + Version }

func buildVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "modelget %s %s/%s\n", Version, runtime.GOOS, runtime.GOARCH)
		},
	}
}

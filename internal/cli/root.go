package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// buildRootCmdWith constructs the command tree. The bare root command runs
// the install; flag values land directly in cfg.
func buildRootCmdWith(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "modelget",
		Short: "Install the model assets the companion app expects",
		Long: "modelget walks a manifest of model assets (LLM weights, whisper files,\n" +
			"voice-conversion checkpoints), skips entries already on disk, downloads\n" +
			"missing ones, and removes partial files when a transfer fails.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd.Context(), cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfg.ModelsDir, "models-dir", cfg.ModelsDir, "Directory the manifest installs into (defaults MODELGET_MODELS_DIR or models)")
	pf.StringVar(&cfg.ManifestPath, "manifest", cfg.ManifestPath, "Manifest file (.yaml|.yml|.json|.toml); built-in manifest when empty")
	pf.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "Parallel transfers (defaults MODELGET_CONCURRENCY or 1)")
	pf.IntVar(&cfg.Retries, "retries", cfg.Retries, "Retries per failed transfer, with exponential backoff")
	pf.StringVar(&cfg.StatusAddr, "status-addr", cfg.StatusAddr, "Serve the status API on this address, e.g. :8080 (off when empty)")
	pf.BoolVar(&cfg.CORSEnabled, "cors-enabled", cfg.CORSEnabled, "Enable CORS on the status API")
	pf.StringVar(&cfg.CORSOrigins, "cors-origins", cfg.CORSOrigins, "Comma-separated allowed CORS origins")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error")
	pf.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: console|json")
	pf.DurationVar(&cfg.HeaderTimeout, "header-timeout", cfg.HeaderTimeout, "Wait for response headers before failing a transfer")

	root.AddCommand(buildPlanCmd(cfg), buildValidateCmd(cfg), buildVersionCmd())

	// completion command
	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(os.Stdout, true) }})
	completionCmd.AddCommand(&cobra.Command{Use: "powershell", Short: "PowerShell completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenPowerShellCompletionWithDesc(os.Stdout) }})
	root.AddCommand(completionCmd)

	return root
}

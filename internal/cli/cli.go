// Package cli implements the modelget command tree: the root install
// command plus plan, validate, version, and completion.
package cli

import (
	"fmt"
	"os"
)

// Main returns an exit code (0 for success, non-zero on error) for use by
// cmd/modelget.
func Main() int { return MainWithArgs(os.Args[1:]) }

// MainWithArgs is a testable variant of Main that accepts args explicitly.
func MainWithArgs(args []string) int {
	if err := loadDotenv(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	cfg := defaultConfig()
	root := buildRootCmdWith(cfg)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

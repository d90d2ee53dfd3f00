package main

import (
	"fmt"
	"os"

	"github.com/signoz-community/signoz-cli/cmd/signoz/commands"
	"github.com/signoz-community/signoz-cli/pkg/catalog"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	tree, err := catalog.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	rootCmd := commands.NewRootCommand(tree, version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

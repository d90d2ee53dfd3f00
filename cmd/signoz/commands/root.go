// Package commands implements the signoz CLI: static catalogue commands
// plus one generated subcommand per resource/operation pair.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/signoz-community/signoz-cli/internal/constants"
	"github.com/signoz-community/signoz-cli/pkg/catalog"
)

// NewRootCommand builds the full command tree for one process run.
func NewRootCommand(tree *catalog.CommandTree, version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "signoz",
		Short: "SigNoz API CLI",
		Long: `A command-line interface for the SigNoz HTTP API.

Commands are generated from an embedded catalogue of resources and
operations; every invocation issues a single logical request against the
configured SigNoz instance.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig()

			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.signoz/config.yml)")
	flags.String("base-url", tree.BaseURL, "SigNoz API base URL ("+constants.EnvBaseURL+")")
	flags.String("api-key", "", "SigNoz API key ("+constants.EnvAPIKey+")")
	flags.String("token", "", "SigNoz bearer token ("+constants.EnvToken+")")
	flags.String("auth", "", "credential mode: auto, api-key, or token")
	flags.StringArray("header", nil, "extra header as name:value or name=value (repeatable)")
	flags.Duration("timeout", constants.DefaultHTTPTimeout, "per-request HTTP timeout")
	flags.Bool("pretty", false, "pretty-print JSON output (default when stdout is a terminal)")
	flags.Bool("raw", false, "emit the {status, headers, body} envelope")

	// Bind flags to viper
	viper.BindPFlag("config", flags.Lookup("config"))
	viper.BindPFlag("base-url", flags.Lookup("base-url"))
	viper.BindPFlag("api-key", flags.Lookup("api-key"))
	viper.BindPFlag("token", flags.Lookup("token"))
	viper.BindPFlag("auth", flags.Lookup("auth"))
	viper.BindPFlag("timeout", flags.Lookup("timeout"))

	// Environment fallbacks, consulted only when the flag is absent.
	viper.BindEnv("base-url", constants.EnvBaseURL)
	viper.BindEnv("api-key", constants.EnvAPIKey)
	viper.BindEnv("token", constants.EnvToken)

	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewListCommand(tree))
	rootCmd.AddCommand(NewDescribeCommand(tree))
	rootCmd.AddCommand(NewTreeCommand(tree))
	rootCmd.AddCommand(NewRequestCommand())
	rootCmd.AddCommand(NewGenerateCommand())
	addResourceCommands(rootCmd, tree)

	return rootCmd
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)

			return
		}

		// Search config in ~/.signoz/config.yml
		viper.AddConfigPath(filepath.Join(home, ".signoz"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("SIGNOZ")
	viper.AutomaticEnv()

	// A missing config file is fine; the flags and environment carry
	// everything the CLI needs.
	_ = viper.ReadInConfig()
}

package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/nightwatch-labs/create-nightwatch/internal/branding"
	"github.com/nightwatch-labs/create-nightwatch/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: heredoc.Docf(`
		Read and write %s defaults stored at ~/%s/config.yaml.

		Keys:
		  %-10s directory suffixes skipped while copying (comma-separated)
		  %-10s overwrite existing project files (true/false)
		  %-10s default template directory
		  %-10s base URL that download URLs are redirected to
		  %-10s draw download progress bars (true/false)

		Every key can also be set through the %s_<KEY> environment variable.
	`, branding.CLIName(), branding.HomeDir(),
		config.KeyExclude, config.KeyOverwrite, config.KeyTemplates, config.KeyMirror, config.KeyProgress,
		branding.EnvPrefix()),
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

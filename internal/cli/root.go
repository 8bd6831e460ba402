package cli

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/nightwatch-labs/create-nightwatch/internal/branding"
	"github.com/nightwatch-labs/create-nightwatch/internal/config"
	"github.com/nightwatch-labs/create-nightwatch/internal/console"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [root-dir]",
	Short: branding.Description(),
	Long: heredoc.Doc(`
		Sets up a Nightwatch test-automation project in root-dir (default: the
		current directory).

		When root-dir has no package.json a new npm project is initialised first.
		Template files are then copied in, skipping excluded directories and
		leaving existing files untouched unless --overwrite is given, and any
		requested driver binaries are downloaded with a progress bar.
	`),
	Example: heredoc.Doc(`
		create-nightwatch
		create-nightwatch ./e2e --templates ~/nightwatch-templates --yes
		create-nightwatch --plan scaffold.yaml
		create-nightwatch --download https://example.com/chromedriver --download-dir bin
	`),
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	// runInit parses flags itself so that unknown --options are recorded
	// without consuming the word that follows them.
	DisableFlagParsing: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runInit,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", console.Failure("Error:"), err)
	}
	return err
}

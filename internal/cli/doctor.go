package cli

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/nightwatch-labs/create-nightwatch/internal/config"
	"github.com/nightwatch-labs/create-nightwatch/internal/console"
	"github.com/spf13/cobra"
)

// lookPath resolves binaries for doctor; tests replace it.
var lookPath = exec.LookPath

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the tools needed to scaffold a project are available",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Runtime check:")
		var missing []string
		for _, name := range []string{"node", "npm"} {
			if !checkBinary(out, name) {
				missing = append(missing, name)
			}
		}

		fmt.Fprintln(out, "Config:")
		fmt.Fprintf(out, "  file      %s\n", config.FilePath())
		fmt.Fprintf(out, "  templates %s\n", orNone(config.Get(config.KeyTemplates)))
		fmt.Fprintf(out, "  exclude   %s\n", orNone(strings.Join(config.Exclude(), ",")))
		fmt.Fprintf(out, "  mirror    %s\n", orNone(config.Get(config.KeyMirror)))

		if len(missing) > 0 {
			return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
		}
		return nil
	},
}

func checkBinary(w io.Writer, name string) bool {
	sym := console.StatusSymbols()
	path, err := lookPath(name)
	if err != nil {
		fmt.Fprintf(w, "  %s %s not found\n", console.Failure(sym.Fail), name)
		return false
	}
	fmt.Fprintf(w, "  %s %s found at %s\n", console.Success(sym.OK), name, console.StripControlChars(path))
	return true
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// Package cli implements the solibored command line interface.
package cli

import "github.com/spf13/cobra"

// rootCmd is the root command for solibored-cli.
var rootCmd = &cobra.Command{
	Use:     "solibored-cli",
	Version: "dev",
	Short:   "Peg solitaire board tools",
	Long: `solibored-cli inspects and edits peg solitaire board positions.

Positions are stored in the solibored data directory and are shared with
the GUI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion overrides the version reported by the root command.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(shellCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

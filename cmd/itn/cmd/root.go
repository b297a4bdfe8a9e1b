package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "itn",
	Short: "Inverse text normalization: spoken form to written form",
	Long: `itn converts spoken-form English text, the kind a speech recognizer
emits, into written form.

Examples:
  itn normalize "two hundred thirty two"          232
  itn sentence "I have twenty one apples"         I have 21 apples
  itn rules add "my co" "MyCo Inc."
  itn test testdata/fixtures/cardinal.itn`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

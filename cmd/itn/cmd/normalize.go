package cmd

import (
	"fmt"
	"strings"

	itn "github.com/speechnorm/go-itn"
	"github.com/speechnorm/go-itn/cmd/itn/config"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <text>",
	Short: "Normalize a single spoken-form expression to written form",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadRulesInto(defaultEngineAdder); err != nil {
			return fmt.Errorf("load custom rules: %w", err)
		}
		fmt.Println(itn.Normalize(strings.Join(args, " ")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

// defaultEngineAdder registers a persisted rule onto the package's
// default engine, bridging config.LoadRulesInto's generic callback shape
// to the concrete itn.AddRule function.
func defaultEngineAdder(spoken, written string) {
	itn.AddRule(spoken, written)
}

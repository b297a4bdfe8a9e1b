package cmd

import (
	"fmt"

	itn "github.com/speechnorm/go-itn"
	"github.com/speechnorm/go-itn/cmd/itn/config"
	"github.com/speechnorm/go-itn/internal/fixture"
	"github.com/spf13/cobra"
)

var testSentenceMode bool

var testCmd = &cobra.Command{
	Use:   "test <fixture-file>",
	Short: "Run a fixture file of input~expected cases",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadRulesInto(defaultEngineAdder); err != nil {
			return fmt.Errorf("load custom rules: %w", err)
		}
		cases, err := fixture.Load(args[0])
		if err != nil {
			return err
		}
		failures := 0
		for _, c := range cases {
			var got string
			if testSentenceMode {
				got = itn.NormalizeSentence(c.Input)
			} else {
				got = itn.Normalize(c.Input)
			}
			if got != c.Expected {
				failures++
				fmt.Printf("%s:%d: FAIL %q: want %q, got %q\n", args[0], c.Line, c.Input, c.Expected, got)
			}
		}
		fmt.Printf("%d cases, %d failed\n", len(cases), failures)
		if failures > 0 {
			return fmt.Errorf("%d of %d cases failed", failures, len(cases))
		}
		return nil
	},
}

func init() {
	testCmd.Flags().BoolVar(&testSentenceMode, "sentence", false, "run cases through NormalizeSentence instead of Normalize")
	rootCmd.AddCommand(testCmd)
}

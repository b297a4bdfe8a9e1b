package cmd

import (
	"fmt"
	"strings"

	itn "github.com/speechnorm/go-itn"
	"github.com/speechnorm/go-itn/cmd/itn/config"
	"github.com/spf13/cobra"
)

var sentenceMaxSpan int

var sentenceCmd = &cobra.Command{
	Use:   "sentence <text>",
	Short: "Scan an utterance and rewrite normalizable spans in place",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadRulesInto(defaultEngineAdder); err != nil {
			return fmt.Errorf("load custom rules: %w", err)
		}
		text := strings.Join(args, " ")
		if sentenceMaxSpan > 0 {
			fmt.Println(itn.NormalizeSentenceWithMaxSpan(text, sentenceMaxSpan))
			return nil
		}
		fmt.Println(itn.NormalizeSentence(text))
		return nil
	},
}

func init() {
	sentenceCmd.Flags().IntVar(&sentenceMaxSpan, "max-span", 0, "window width in tokens (default 16)")
	rootCmd.AddCommand(sentenceCmd)
}

package cmd

import (
	"fmt"

	itn "github.com/speechnorm/go-itn"
	"github.com/speechnorm/go-itn/cmd/itn/config"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage persisted custom normalization rules",
}

var rulesAddCmd = &cobra.Command{
	Use:   "add <spoken> <written>",
	Short: "Add or replace a custom rule",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rules, err := config.Load()
		if err != nil {
			return err
		}
		spoken, written := args[0], args[1]
		replaced := false
		for i := range rules {
			if rules[i].Spoken == spoken {
				rules[i].Written = written
				replaced = true
				break
			}
		}
		if !replaced {
			rules = append(rules, config.Rule{Spoken: spoken, Written: written})
		}
		if err := config.Save(rules); err != nil {
			return err
		}
		fmt.Printf("added rule: %q -> %q\n", spoken, written)
		return nil
	},
}

var rulesRemoveCmd = &cobra.Command{
	Use:   "remove <spoken>",
	Short: "Remove a custom rule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rules, err := config.Load()
		if err != nil {
			return err
		}
		spoken := args[0]
		out := rules[:0]
		found := false
		for _, r := range rules {
			if r.Spoken == spoken {
				found = true
				continue
			}
			out = append(out, r)
		}
		if !found {
			fmt.Printf("no rule found for %q\n", spoken)
			return nil
		}
		if err := config.Save(out); err != nil {
			return err
		}
		fmt.Printf("removed rule: %q\n", spoken)
		return nil
	},
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List persisted custom rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rules, err := config.Load()
		if err != nil {
			return err
		}
		if len(rules) == 0 {
			fmt.Println("no custom rules")
			return nil
		}
		for _, r := range rules {
			fmt.Printf("%s -> %s\n", r.Spoken, r.Written)
		}
		return nil
	},
}

var rulesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all persisted custom rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		itn.ClearRules()
		return config.Save(nil)
	},
}

func init() {
	rulesCmd.AddCommand(rulesAddCmd, rulesRemoveCmd, rulesListCmd, rulesClearCmd)
	rootCmd.AddCommand(rulesCmd)
}

package cmd

import (
	"fmt"

	itn "github.com/speechnorm/go-itn"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the itn library version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(itn.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/smartnotes"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of smartnotes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("smartnotes version %s\n", strings.TrimSpace(smartnotes.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagsMatch string

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the tag vocabulary of the seed notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := newController()
		tags := c.AllTags()
		if tagsMatch != "" {
			var err error
			if tags, err = c.TagsMatching(tagsMatch); err != nil {
				fatal("Error matching tags", err)
			}
		}
		for _, t := range tags {
			fmt.Println(t)
		}
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.Flags().StringVarP(&tagsMatch, "match", "m", "", "Glob pattern tags must match (e.g. 'proj-*')")
}

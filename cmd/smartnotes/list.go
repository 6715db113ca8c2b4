package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	listJSON  bool
	listQuery string
	listTags  []string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the seed notes passing a query and tag filters",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := newController()
		c.SetSearchQuery(listQuery)
		for _, tag := range listTags {
			c.ToggleTagFilter(tag)
		}
		notes := c.VisibleNotes()

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		for _, note := range notes {
			tags := ""
			if len(note.Tags) > 0 {
				tags = fmt.Sprintf(" [%s]", strings.Join(note.Tags, ", "))
			}
			fmt.Printf("%s - %s%s\n", note.ID, note.Title, tags)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Case-insensitive text that title or content must contain")
	listCmd.Flags().StringSliceVarP(&listTags, "tag", "t", nil, "Tag every note must carry (repeatable)")
}

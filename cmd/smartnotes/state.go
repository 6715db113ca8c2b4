package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/smartnotes/pkg/core"
)

var stateDiagram bool

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the controller state of a fresh session",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := newController()

		if stateDiagram {
			diagram := introspection.DefaultDiagramConfig()
			diagram.SecondaryID = "session"
			diagram.SecondaryLabel = "Session Topology"
			fmt.Println(introspection.TreeDiagram(buildSessionTree(c.State().(core.ControllerState)), diagram))
			return
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(c.State()); err != nil {
			fatal("Error encoding JSON", err)
		}
	},
}

type sessionNode struct {
	Name     string
	Status   string
	Metadata map[string]string
	Children []sessionNode
}

// buildSessionTree maps controller state onto the node shape rendered by
// introspection.TreeDiagram. Status values must match introspection.DefaultStyles().
func buildSessionTree(state core.ControllerState) sessionNode {
	sessionStatus := "suspended"
	if state.Session.State == core.Editing {
		sessionStatus = "running"
	}
	store, _ := state.Store.(core.StoreState)

	return sessionNode{
		Name:   "Controller",
		Status: "running",
		Metadata: map[string]string{
			"type":     "process",
			"visible":  fmt.Sprintf("%d", state.VisibleNotes),
			"selected": state.SelectedID,
		},
		Children: []sessionNode{
			{
				Name:   "Store",
				Status: "running",
				Metadata: map[string]string{
					"type":  "container",
					"notes": fmt.Sprintf("%d", store.Notes),
				},
			},
			{
				Name:   "EditSession",
				Status: sessionStatus,
				Metadata: map[string]string{
					"type": "goroutine",
					"note": state.Session.NoteID,
				},
			},
		},
	}
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.Flags().BoolVar(&stateDiagram, "diagram", false, "Render a Mermaid diagram instead of JSON")
}

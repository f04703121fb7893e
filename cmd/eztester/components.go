package main

import (
	"fmt"

	"eztester/internal/engine"

	"github.com/spf13/cobra"
)

func newComponentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List component types usable in scene files",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, name := range engine.RegisteredComponents() {
				fmt.Fprintf(out, "  %s\n", name)
			}
		},
	}
}

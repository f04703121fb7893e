// eztester runs scene helper demos: measurements between objects, cast
// probes and a mouse-driven pointer.
//
// Usage:
//
//	eztester run [--scene path]        - Open the demo scene in a window
//	eztester measure --a x,y,z --b ...  - Print distance and angle between two points
//	eztester cast --type Sphere ...     - Cast against a scene without a window
//	eztester components                 - List component types usable in scene files
//
// Global flags:
//
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"eztester/internal/logging"

	"github.com/spf13/cobra"

	// Component factories referenced by scene files.
	_ "eztester/internal/measure"
	_ "eztester/internal/pointer"
	_ "eztester/internal/raycast"
)

var flagLogLevel string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "eztester",
		Short: "Scene helpers for testing 3-D scenes",
		Long: `eztester measures distances and angles between objects, casts rays and
shapes against colliders, and moves a pointer object with the mouse.

Examples:
  eztester run
  eztester run --scene ./configs/scene.yaml --log-level debug
  eztester measure --a 0,0,0 --b 0,-1,5 --axis Y
  eztester cast --type Sphere --origin -6,1,0 --direction 1,0,0 --extent 0.3
  eztester components`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetOutput(cmd.ErrOrStderr())
			return logging.SetLevel(flagLogLevel)
		},
	}
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	root.AddCommand(newRunCmd())
	root.AddCommand(newMeasureCmd())
	root.AddCommand(newCastCmd())
	root.AddCommand(newComponentsCmd())
	return root
}

package main

import (
	"eztester/internal/app"
	"eztester/internal/config"
	"eztester/internal/logging"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var scenePath string
	var fps int32

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a scene in a window",
		Long: `Open a scene in a window and run it until the window is closed.

The scene is read from --scene, else from ./configs/scene.yaml, else the
built-in demo scene is used.

Controls:
  Mouse        - Move the pointer object
  Mouse wheel  - Move the pointer object closer or further
  Esc          - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, source, err := config.Load(scenePath)
			if err != nil {
				return err
			}
			if fps > 0 {
				sc.Window.FPS = fps
			}
			logging.New("eztester").Info("loaded scene", "source", source, "objects", len(sc.Objects))
			return app.New(sc).Run()
		},
	}
	cmd.Flags().StringVar(&scenePath, "scene", "", "Path to a scene YAML file")
	cmd.Flags().Int32Var(&fps, "fps", 0, "Target frame rate (default: the scene's)")
	return cmd
}

package main

import (
	"fmt"

	"eztester/internal/engine"
	"eztester/internal/logging"
	"eztester/internal/measure"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"
)

func newMeasureCmd() *cobra.Command {
	var posA, posB, rotA []float32
	var axisName string

	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Print the distance and angle between two points",
		Long: `Print the distance and the signed tilt angle of B relative to A.

A may be rotated (Euler degrees, X then Y then Z); its forward, up and right
vectors define the planes the angle is measured between.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			axis, err := measure.ParseAxis(axisName)
			if err != nil {
				return err
			}
			a, err := transform(posA, rotA)
			if err != nil {
				return fmt.Errorf("--a/--rot-a: %w", err)
			}
			b, err := transform(posB, nil)
			if err != nil {
				return fmt.Errorf("--b: %w", err)
			}

			angle := measure.NewAngle(axis)
			angle.SetLogger(logging.New("measure"))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "distance: %s\n", measure.FormatValue(measure.Distance{}.Calculate(a, b), ""))
			fmt.Fprintf(out, "angle (%s): %s\n", axis, measure.FormatValue(angle.Calculate(a, b), "°"))
			return nil
		},
	}
	cmd.Flags().Float32SliceVar(&posA, "a", []float32{0, 0, 0}, "Position of anchor A (x,y,z)")
	cmd.Flags().Float32SliceVar(&posB, "b", []float32{0, 0, 1}, "Position of anchor B (x,y,z)")
	cmd.Flags().Float32SliceVar(&rotA, "rot-a", []float32{0, 0, 0}, "Rotation of anchor A in degrees (x,y,z)")
	cmd.Flags().StringVar(&axisName, "axis", "Y", "Angle axis: X or Y")
	return cmd
}

func transform(pos, rot []float32) (engine.Transform, error) {
	t := engine.Transform{Scale: rl.Vector3{X: 1, Y: 1, Z: 1}}
	p, err := vector(pos)
	if err != nil {
		return t, err
	}
	t.Position = p
	if rot != nil {
		if t.Rotation, err = vector(rot); err != nil {
			return t, err
		}
	}
	return t, nil
}

func vector(v []float32) (rl.Vector3, error) {
	if len(v) != 3 {
		return rl.Vector3{}, fmt.Errorf("want 3 components, got %d", len(v))
	}
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}, nil
}

package main

import (
	"fmt"
	"io"

	"eztester/internal/app"
	"eztester/internal/config"
	"eztester/internal/logging"
	"eztester/internal/physics"
	"eztester/internal/raycast"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"
)

type castFlags struct {
	scene     string
	rayType   string
	origin    []float32
	direction []float32
	distance  float32
	extent    float32
	layers    []int
	all       bool
}

func newCastCmd() *cobra.Command {
	var f castFlags

	cmd := &cobra.Command{
		Use:   "cast",
		Short: "Cast a ray or shape against a scene without a window",
		Long: `Load a scene, register its colliders and run a single cast.

Sphere and capsule casts use --extent as the radius; box casts use it as the
half extent on every axis. Capsule casts start as a zero-length capsule at
--origin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCast(cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVar(&f.scene, "scene", "", "Path to a scene YAML file")
	cmd.Flags().StringVar(&f.rayType, "type", "Ray", "Cast type: Ray, Sphere, Box, Capsule")
	cmd.Flags().Float32SliceVar(&f.origin, "origin", []float32{0, 1, -10}, "Cast origin (x,y,z)")
	cmd.Flags().Float32SliceVar(&f.direction, "direction", []float32{0, 0, 1}, "Cast direction (x,y,z)")
	cmd.Flags().Float32Var(&f.distance, "distance", raycast.Infinity, "Maximum distance")
	cmd.Flags().Float32Var(&f.extent, "extent", 0.5, "Radius or half extent of the cast shape")
	cmd.Flags().IntSliceVar(&f.layers, "layers", nil, "Layers to hit (default: all)")
	cmd.Flags().BoolVar(&f.all, "all", false, "Report every hit instead of the closest")
	return cmd
}

func runCast(out io.Writer, f castFlags) error {
	rayType, err := raycast.ParseRayType(f.rayType)
	if err != nil {
		return err
	}
	origin, err := vector(f.origin)
	if err != nil {
		return fmt.Errorf("--origin: %w", err)
	}
	direction, err := vector(f.direction)
	if err != nil {
		return fmt.Errorf("--direction: %w", err)
	}

	sc, source, err := config.Load(f.scene)
	if err != nil {
		return err
	}
	world := app.NewWorld(nil, nil)
	if _, err := config.Build(sc, world.Env(), nil); err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	logging.New("cast").Debug("scene ready", "source", source, "colliders", len(world.Objects()))

	mask := physics.AllLayers
	if len(f.layers) > 0 {
		mask = physics.MaskOf(f.layers...)
	}
	c := castRequest{
		rayType:   rayType,
		origin:    origin,
		direction: direction,
		distance:  f.distance,
		extent:    f.extent,
		mask:      mask,
	}

	var hits []physics.RaycastHit
	if f.all {
		hits = c.all(world)
	} else if hit, ok := c.closest(world); ok {
		hits = append(hits, hit)
	}

	if len(hits) == 0 {
		fmt.Fprintln(out, "no hit")
		return nil
	}
	for _, h := range hits {
		fmt.Fprintf(out, "%-16s distance %.2f  point (%.2f, %.2f, %.2f)  normal (%.2f, %.2f, %.2f)\n",
			h.GameObject.Name, h.Distance,
			h.Point.X, h.Point.Y, h.Point.Z,
			h.Normal.X, h.Normal.Y, h.Normal.Z)
	}
	return nil
}

type castRequest struct {
	rayType   raycast.RayType
	origin    rl.Vector3
	direction rl.Vector3
	distance  float32
	extent    float32
	mask      physics.LayerMask
}

func (r castRequest) halfExtents() rl.Vector3 {
	return rl.Vector3{X: r.extent, Y: r.extent, Z: r.extent}
}

func (r castRequest) closest(c raycast.Caster) (physics.RaycastHit, bool) {
	switch r.rayType {
	case raycast.RayTypeSphere:
		return raycast.ShootSphereCastMasked(c, r.origin, r.extent, r.direction, r.distance, r.mask)
	case raycast.RayTypeBox:
		return raycast.ShootBoxCastMasked(c, r.origin, r.halfExtents(), r.direction, rl.QuaternionIdentity(), r.distance, r.mask)
	case raycast.RayTypeCapsule:
		return raycast.ShootCapsuleCastMasked(c, r.origin, r.origin, r.extent, r.direction, r.distance, r.mask)
	}
	return raycast.ShootRaycastMasked(c, r.origin, r.direction, r.distance, r.mask)
}

func (r castRequest) all(c raycast.Caster) []physics.RaycastHit {
	switch r.rayType {
	case raycast.RayTypeSphere:
		return raycast.ShootSphereCastAllMasked(c, r.origin, r.extent, r.direction, r.distance, r.mask)
	case raycast.RayTypeBox:
		return raycast.ShootBoxCastAllMasked(c, r.origin, r.halfExtents(), r.direction, rl.QuaternionIdentity(), r.distance, r.mask)
	case raycast.RayTypeCapsule:
		return raycast.ShootCapsuleCastAllMasked(c, r.origin, r.origin, r.extent, r.direction, r.distance, r.mask)
	}
	return raycast.ShootRaycastAllMasked(c, r.origin, r.direction, r.distance, r.mask)
}

// Command visdemo runs a visibility query from the command line: either
// a literal built-in scene (a square source pair over an apertured
// slab occluder, written with mgl64 vectors) or a YAML scene file
// loaded through meshio.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/dhaumont/visilib-sub000/internal/vislog"
	"github.com/dhaumont/visilib-sub000/meshio"
	"github.com/dhaumont/visilib-sub000/query"
)

func main() {
	scenePath := flag.String("scene", "", "path to a YAML scene file; if empty, runs the built-in demo scene")
	verbose := flag.Bool("v", false, "enable info-level logging")
	flag.Parse()

	if *verbose {
		vislog.SetLevel(vislog.INFO)
	}

	var (
		sourceA, sourceB []float32
		scene            *query.Scene
		cfg              query.Config
		err              error
	)
	if *scenePath != "" {
		sourceA, sourceB, scene, cfg, err = meshio.BuildScene(*scenePath)
		if err != nil {
			vislog.Error("visdemo: failed to load scene", vislog.Err(err))
			os.Exit(1)
		}
	} else {
		sourceA, sourceB, scene, cfg = builtinScene()
	}

	result, stats := query.AreVisible(scene, sourceA, sourceB, cfg, nil)
	fmt.Printf("result: %s\n", result)
	fmt.Printf("splits: %d  rays cast: %d  apertures found: %d  max depth: %d\n",
		stats.SplitCount, stats.RaysCast, stats.AperturesFound, stats.MaxDepthReached)
}

// builtinScene describes two unit squares facing each other across a
// slab occluder pierced by a square hole dead-center in the stabbing
// path: source B is fully visible from source A through the aperture.
func builtinScene() ([]float32, []float32, *query.Scene, query.Config) {
	a := square(mgl64.Vec3{-0.5, -0.5, 0}, mgl64.Vec3{0.5, 0.5, 0})
	b := square(mgl64.Vec3{-0.5, -0.5, 4}, mgl64.Vec3{0.5, 0.5, 4})

	scene := query.NewScene()
	scene.AddOccluder(apertureSlab())
	scene.Prepare()

	cfg := query.Config{
		SilhouetteOptimisation:     true,
		HypersphereNormalisation:   true,
		RepresentativeLineSampling: true,
		Precision:                  query.Double,
	}
	return a, b, scene, cfg
}

func square(lo, hi mgl64.Vec3) []float32 {
	z := lo.Z()
	return []float32{
		float32(lo.X()), float32(lo.Y()), float32(z),
		float32(hi.X()), float32(lo.Y()), float32(z),
		float32(hi.X()), float32(hi.Y()), float32(z),
		float32(lo.X()), float32(hi.Y()), float32(z),
	}
}

// apertureSlab is a 3x3x0.2 slab at z=2 with a 1x1 square hole cut
// through its middle, built as 8 quads (2 triangles each).
func apertureSlab() query.MeshDesc {
	const (
		outer = 1.5
		inner = 0.5
		z0    = 1.9
		z1    = 2.1
	)
	v := []float32{}
	f := []int32{}
	addQuad := func(ax, ay, bx, by, cx, cy, dx, dy float32, z float32) {
		base := int32(len(v) / 3)
		v = append(v,
			ax, ay, z, bx, by, z, cx, cy, z, dx, dy, z,
		)
		f = append(f, base, base+1, base+2, base, base+2, base+3)
	}
	// Front and back faces of the frame, split into 4 trapezoids each
	// around the square hole (top, bottom, left, right strips).
	for _, z := range []float32{z0, z1} {
		addQuad(-outer, inner, outer, inner, outer, outer, -outer, outer, z)  // top
		addQuad(-outer, -outer, outer, -outer, outer, -inner, -outer, -inner, z) // bottom
		addQuad(-outer, -inner, -inner, -inner, -inner, inner, -outer, inner, z) // left
		addQuad(inner, -inner, outer, -inner, outer, inner, inner, inner, z)     // right
	}
	return query.MeshDesc{Vertices: v, Faces: f}
}

package meshio

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dhaumont/visilib-sub000/query"
)

// SceneFile is the on-disk YAML shape a visibility query is driven from:
// two polygonal sources, a list of occluder mesh files, and the
// query.Config options spec.md §6 exposes to a caller. File paths are
// resolved relative to the scene file's own directory.
type SceneFile struct {
	SourceA   [][3]float32 `yaml:"source_a"`
	SourceB   [][3]float32 `yaml:"source_b"`
	Occluders []string     `yaml:"occluders"`
	Config    ConfigFile   `yaml:"config"`
}

// ConfigFile mirrors query.Config with YAML-friendly field names and a
// string precision selector instead of query.Precision's int enum.
type ConfigFile struct {
	SilhouetteOptimisation     bool   `yaml:"silhouette_optimisation"`
	HypersphereNormalisation   bool   `yaml:"hypersphere_normalisation"`
	RepresentativeLineSampling bool   `yaml:"representative_line_sampling"`
	Precision                  string `yaml:"precision"` // float | double | exact
	DetectApertureOnly         bool   `yaml:"detect_aperture_only"`
	UseAcceleratedRayBackend   bool   `yaml:"use_accelerated_ray_backend"`
}

// ToConfig translates the file's string precision selector into
// query.Config's Precision enum, defaulting to Double when empty or
// unrecognised.
func (c ConfigFile) ToConfig() query.Config {
	p := query.Double
	switch c.Precision {
	case "float":
		p = query.Float
	case "exact":
		p = query.ExactPrecision
	}
	return query.Config{
		SilhouetteOptimisation:     c.SilhouetteOptimisation,
		HypersphereNormalisation:   c.HypersphereNormalisation,
		RepresentativeLineSampling: c.RepresentativeLineSampling,
		Precision:                  p,
		DetectApertureOnly:         c.DetectApertureOnly,
		UseAcceleratedRayBackend:   c.UseAcceleratedRayBackend,
	}
}

// LoadScene reads and parses a scene YAML file. It does not load the
// occluder OBJ files listed in it; call BuildScene for that.
func LoadScene(path string) (SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneFile{}, err
	}
	var sf SceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return SceneFile{}, fmt.Errorf("meshio: parsing %s: %w", path, err)
	}
	return sf, nil
}

// BuildScene loads path and every occluder OBJ it references (resolved
// relative to path's directory), returning flat source vertex arrays, a
// populated query.Scene, and the translated query.Config ready to pass
// to query.AreVisible.
func BuildScene(path string) (sourceA, sourceB []float32, scene *query.Scene, cfg query.Config, err error) {
	sf, err := LoadScene(path)
	if err != nil {
		return nil, nil, nil, query.Config{}, err
	}
	dir := filepath.Dir(path)

	scene = query.NewScene()
	for _, rel := range sf.Occluders {
		f, ferr := os.Open(filepath.Join(dir, rel))
		if ferr != nil {
			return nil, nil, nil, query.Config{}, ferr
		}
		raw, perr := ParseOBJ(f)
		f.Close()
		if perr != nil {
			return nil, nil, nil, query.Config{}, fmt.Errorf("meshio: %s: %w", rel, perr)
		}
		scene.AddOccluder(query.MeshDesc{Vertices: raw.Vertices, Faces: raw.Faces, Normals: raw.Normals})
	}
	scene.Prepare()

	return flatten(sf.SourceA), flatten(sf.SourceB), scene, sf.Config.ToConfig(), nil
}

func flatten(pts [][3]float32) []float32 {
	out := make([]float32, 0, 3*len(pts))
	for _, p := range pts {
		out = append(out, p[0], p[1], p[2])
	}
	return out
}

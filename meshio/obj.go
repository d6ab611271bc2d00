// Package meshio supports the external-contract mesh and scene loading
// spec.md §1 places out of scope for the engine itself ("mesh file I/O
// (.obj parsing)") but which a complete repository still needs in order
// to drive the engine from files rather than literals. ParseOBJ is
// adapted from the teacher's loader/obj package, trimmed to the subset
// the visibility engine actually consumes: vertex positions, vertex
// normals, and triangulated faces. Materials, texture coordinates, and
// grouping are not needed by an occluder mesh and are parsed only far
// enough to be skipped without error.
package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RawMesh is the flat-array mesh shape query.MeshDesc borrows, decoupled
// from the query package so meshio has no dependency on it.
type RawMesh struct {
	Vertices []float32 // 3*vertex_count
	Normals  []float32 // 3*vertex_count, empty if the file had no vn lines
	Faces    []int32   // 3*face_count, already triangulated (fan)
}

// ParseOBJ reads a Wavefront .obj stream and returns its geometry,
// triangulating any polygonal face with a vertex fan. Only v, vn and f
// lines affect the result; every other line type (mtllib, usemtl, vt,
// g, o, s, comments) is accepted and ignored.
func ParseOBJ(r io.Reader) (RawMesh, error) {
	var mesh RawMesh
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		var err error
		switch fields[0] {
		case "v":
			err = parseTriplet(fields[1:], &mesh.Vertices)
		case "vn":
			err = parseTriplet(fields[1:], &mesh.Normals)
		case "f":
			err = parseFace(fields[1:], len(mesh.Vertices)/3, &mesh.Faces)
		}
		if err != nil {
			return RawMesh{}, fmt.Errorf("meshio: line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return RawMesh{}, err
	}
	if len(mesh.Normals) != len(mesh.Vertices) {
		mesh.Normals = nil
	}
	return mesh, nil
}

func parseTriplet(fields []string, out *[]float32) error {
	if len(fields) < 3 {
		return fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	for _, f := range fields[:3] {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return err
		}
		*out = append(*out, float32(v))
	}
	return nil
}

// parseFace parses "f v1[/vt1][/vn1] v2... v3..." and triangulates an
// n-gon as a fan around its first vertex, matching the teacher's
// NewGeometry copyVertex loop (idx from 1 to len-2).
func parseFace(fields []string, vertexCount int, out *[]int32) error {
	if len(fields) < 3 {
		return fmt.Errorf("face line with fewer than 3 vertices")
	}
	idx := make([]int32, len(fields))
	for i, f := range fields {
		vfield := strings.SplitN(f, "/", 2)[0]
		v, err := strconv.ParseInt(vfield, 10, 32)
		if err != nil {
			return err
		}
		switch {
		case v > 0:
			idx[i] = int32(v - 1)
		case v < 0:
			idx[i] = int32(vertexCount) + int32(v)
		default:
			return fmt.Errorf("face vertex index cannot be 0")
		}
	}
	for i := 1; i < len(idx)-1; i++ {
		*out = append(*out, idx[0], idx[i], idx[i+1])
	}
	return nil
}

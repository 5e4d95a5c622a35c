// Package obj decodes Wavefront OBJ meshes into the normalized scene model.
package obj

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"github.com/cadworks/cadparse/pkg/geometry"
	"github.com/cadworks/cadparse/pkg/scene"
)

// Decode parses an OBJ buffer. All vertices and faces accumulate into a
// single mesh object on one default layer. Decoding never fails; unreadable
// input yields an empty mesh.
//
// Faces are assumed triangulated: the first three vertex references of each
// f record form the emitted triangle, without fan-triangulation of n-gons.
func Decode(data []byte) *scene.ParsedScene {
	var vertices []geometry.Vector3
	var faces [][3]int

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 3 {
				continue
			}
			x, _ := strconv.ParseFloat(fields[1], 64)
			y, _ := strconv.ParseFloat(fields[2], 64)
			z := 0.0
			if len(fields) > 3 {
				z, _ = strconv.ParseFloat(fields[3], 64)
			}
			vertices = append(vertices, geometry.NewVector3(x, y, z))

		case "f":
			refs := fields[1:]
			if len(refs) < 3 {
				continue
			}
			var face [3]int
			for i := 0; i < 3; i++ {
				// Each reference may be v, v/vt, or v/vt/vn; only the
				// leading vertex index matters. OBJ indices are 1-based.
				idx, _ := strconv.Atoi(strings.SplitN(refs[i], "/", 2)[0])
				face[i] = idx - 1
			}
			faces = append(faces, face)
		}
	}

	layer := scene.DefaultLayer()
	layer.Objects = []scene.DrawingObject{
		{
			ID:    scene.NewObjectID(),
			Type:  scene.ObjectPolyline,
			Layer: layer.ID,
			Geometry: scene.MeshGeometry{
				Vertices: vertices,
				Faces:    faces,
			},
			Properties: map[string]any{},
		},
	}

	return &scene.ParsedScene{
		Layers: []scene.Layer{layer},
		Bounds: scene.BoundsOfVertices(vertices),
		Units:  scene.DefaultUnits,
		Metadata: map[string]any{
			"format":      "OBJ",
			"vertexCount": len(vertices),
			"faceCount":   len(faces),
		},
	}
}

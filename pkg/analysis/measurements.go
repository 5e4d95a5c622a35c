// Package analysis computes summary statistics over parsed scenes for
// inspection tooling.
package analysis

import (
	"fmt"

	"github.com/cadworks/cadparse/pkg/geometry"
	"github.com/cadworks/cadparse/pkg/scene"
)

// LayerStats summarizes one layer.
type LayerStats struct {
	ID          string
	Name        string
	Color       string
	ObjectCount int
}

// SceneStats contains measurements of a parsed scene.
type SceneStats struct {
	LayerCount    int
	ObjectCount   int
	ObjectsByType map[scene.ObjectType]int
	TriangleCount int
	VertexCount   int
	SurfaceArea   float64
	Bounds        geometry.BoundingBox
	Dimensions    geometry.Vector3
	Layers        []LayerStats
}

// AnalyzeScene walks every layer and object of a scene and aggregates
// counts, mesh surface area, and dimensions.
func AnalyzeScene(s *scene.ParsedScene) *SceneStats {
	stats := &SceneStats{
		LayerCount:    len(s.Layers),
		ObjectsByType: make(map[scene.ObjectType]int),
		Bounds:        s.Bounds,
	}

	if !s.Bounds.IsEmpty() {
		stats.Dimensions = s.Bounds.Size()
	}

	for _, layer := range s.Layers {
		stats.Layers = append(stats.Layers, LayerStats{
			ID:          layer.ID,
			Name:        layer.Name,
			Color:       layer.Color,
			ObjectCount: len(layer.Objects),
		})

		for _, obj := range layer.Objects {
			stats.ObjectCount++
			stats.ObjectsByType[obj.Type]++

			mesh, ok := obj.Geometry.(scene.MeshGeometry)
			if !ok {
				continue
			}
			stats.VertexCount += len(mesh.Vertices)
			stats.TriangleCount += len(mesh.Faces)
			stats.SurfaceArea += meshSurfaceArea(mesh)
		}
	}

	return stats
}

// meshSurfaceArea sums triangle areas, skipping faces whose indices fall
// outside the vertex list.
func meshSurfaceArea(mesh scene.MeshGeometry) float64 {
	total := 0.0
	for _, face := range mesh.Faces {
		if !validFace(face, len(mesh.Vertices)) {
			continue
		}
		a := mesh.Vertices[face[0]]
		b := mesh.Vertices[face[1]]
		c := mesh.Vertices[face[2]]
		total += b.Sub(a).Cross(c.Sub(a)).Length() / 2.0
	}
	return total
}

func validFace(face [3]int, vertexCount int) bool {
	for _, idx := range face {
		if idx < 0 || idx >= vertexCount {
			return false
		}
	}
	return true
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

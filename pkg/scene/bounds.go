package scene

import "github.com/cadworks/cadparse/pkg/geometry"

// The placeholder footprint used when an entity scene has no coordinates at
// all. Giving the viewer a concrete box to frame beats handing it NaNs.
var defaultBounds = geometry.NewBoundingBoxFrom(
	geometry.NewVector3(0, 0, 0),
	geometry.NewVector3(100, 100, 100),
)

// DefaultBounds returns the placeholder bounding box for scenes without
// extracted geometry.
func DefaultBounds() geometry.BoundingBox {
	return defaultBounds
}

// BoundsOfObjects computes the axis-aligned bounding box over a set of
// drawing objects, extracting line endpoints, circle and arc centers, text
// anchors, and mesh vertices. When no coordinate is observed the placeholder
// DefaultBounds box is returned.
//
// Note the deliberate asymmetry with BoundsOfVertices, which collapses to a
// degenerate box on empty input instead of substituting the placeholder.
func BoundsOfObjects(objects []DrawingObject) geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()

	for _, obj := range objects {
		switch g := obj.Geometry.(type) {
		case LineGeometry:
			bbox.Extend(g.Start)
			bbox.Extend(g.End)
		case CircleGeometry:
			bbox.Extend(g.Center)
		case ArcGeometry:
			bbox.Extend(g.Center)
		case TextGeometry:
			bbox.Extend(g.Position)
		case MeshGeometry:
			for _, v := range g.Vertices {
				bbox.Extend(v)
			}
		}
	}

	if bbox.IsEmpty() {
		return DefaultBounds()
	}
	return bbox
}

// BoundsOfVertices computes the axis-aligned bounding box over a flat vertex
// list. Empty input yields the degenerate infinite box unchanged.
func BoundsOfVertices(vertices []geometry.Vector3) geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range vertices {
		bbox.Extend(v)
	}
	return bbox
}

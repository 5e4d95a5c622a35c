// Package scene defines the normalized in-memory representation every CAD
// decoder produces: an ordered set of layers holding typed drawing objects,
// a bounding box for camera framing, and free-form metadata.
//
// A ParsedScene is built fresh per decode call and owned by the caller once
// returned; decoders keep no residual state.
package scene

import (
	"github.com/google/uuid"

	"github.com/cadworks/cadparse/pkg/geometry"
)

// DefaultUnits is the unit system assumed when a format carries none.
const DefaultUnits = "mm"

// ObjectType identifies the kind of drawing object a geometry payload
// belongs to. Line, Circle and Polyline are populated by the current
// decoders; the remaining types are reserved for future entities and are
// valid to construct with empty geometry.
type ObjectType string

const (
	ObjectLine      ObjectType = "line"
	ObjectCircle    ObjectType = "circle"
	ObjectArc       ObjectType = "arc"
	ObjectPolyline  ObjectType = "polyline"
	ObjectText      ObjectType = "text"
	ObjectDimension ObjectType = "dimension"
	ObjectBlock     ObjectType = "block"
)

// Geometry is the payload variant carried by a DrawingObject.
type Geometry interface {
	isGeometry()
}

// LineGeometry is a straight segment between two points.
type LineGeometry struct {
	Start geometry.Vector3
	End   geometry.Vector3
}

// CircleGeometry is a circle given by center and radius.
type CircleGeometry struct {
	Center geometry.Vector3
	Radius float64
}

// ArcGeometry is a circular arc. Reserved; no decoder emits it yet.
type ArcGeometry struct {
	Center     geometry.Vector3
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// TextGeometry is a text annotation anchored at a point. Reserved.
type TextGeometry struct {
	Position geometry.Vector3
	Value    string
	Height   float64
}

// MeshGeometry is a vertex list plus triangular face indices. Polyline
// objects from the OBJ and STL decoders carry their whole mesh in one
// payload.
type MeshGeometry struct {
	Vertices []geometry.Vector3
	Faces    [][3]int
}

func (LineGeometry) isGeometry()   {}
func (CircleGeometry) isGeometry() {}
func (ArcGeometry) isGeometry()    {}
func (TextGeometry) isGeometry()   {}
func (MeshGeometry) isGeometry()   {}

// DrawingObject is a single typed entity recovered from a CAD file.
type DrawingObject struct {
	// ID is synthesized per parse call. Uniqueness is the only contract;
	// two parses of the same bytes produce different IDs.
	ID string

	Type ObjectType

	// Layer references the ID of the Layer holding this object. Decoders
	// guarantee it never dangles: an unmatched reference is rewritten to
	// the first layer during grouping.
	Layer string

	Geometry Geometry

	// Properties holds free-form, decoder-specific annotations.
	Properties map[string]any
}

// Layer groups drawing objects under a stable ID. Encounter order is
// preserved both across layers and within a layer's object list.
type Layer struct {
	ID      string
	Name    string
	Visible bool
	Color   string
	Objects []DrawingObject
}

// ParsedScene is the unified scene graph handed to the renderer.
type ParsedScene struct {
	// Layers always holds at least one entry, even when nothing was
	// recovered from the input.
	Layers   []Layer
	Bounds   geometry.BoundingBox
	Units    string
	Metadata map[string]any
}

// NewObjectID returns a fresh object identifier.
func NewObjectID() string {
	return uuid.NewString()
}

// DefaultLayer returns the synthetic layer decoders fall back to when the
// input declares none.
func DefaultLayer() Layer {
	return Layer{
		ID:      "default",
		Name:    "Default",
		Visible: true,
		Color:   "#cccccc",
	}
}

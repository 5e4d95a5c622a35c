package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an empty bounding box. Until the first Extend the
// box is degenerate: Min sits at +Inf and Max at -Inf on every axis, so
// IsEmpty reports true and any extension snaps both corners to finite values.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: Vector3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
}

// NewBoundingBoxFrom creates a bounding box with explicit corners.
func NewBoundingBoxFrom(min, max Vector3) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// IsEmpty reports whether the box has never been extended.
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector3 {
	return Vector3{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
		Z: (b.Min.Z + b.Max.Z) / 2.0,
	}
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	size := b.Size()
	return size.Length()
}

package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	bbox := NewBoundingBox()

	if !bbox.IsEmpty() {
		t.Error("new bounding box should be empty")
	}
	if !math.IsInf(bbox.Min.X, 1) || !math.IsInf(bbox.Max.X, -1) {
		t.Errorf("empty box should be degenerate, got min %v max %v", bbox.Min, bbox.Max)
	}

	bbox.Extend(NewVector3(1, 1, 1))
	if bbox.IsEmpty() {
		t.Error("extended bounding box should not be empty")
	}
}

func TestBoundingBoxSinglePoint(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(5, 5, 5))

	if bbox.Min != bbox.Max {
		t.Errorf("single point box should collapse: min %v max %v", bbox.Min, bbox.Max)
	}
}

func TestBoundingBoxSize(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(10, 20, 30))

	size := bbox.Size()
	expected := NewVector3(10, 20, 30)

	if size != expected {
		t.Errorf("Size failed: expected %v, got %v", expected, size)
	}
}

func TestBoundingBoxCenter(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(10, 20, 30))

	center := bbox.Center()
	expected := NewVector3(5, 10, 15)

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestBoundingBoxDiagonal(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(3, 4, 0))

	diagonal := bbox.Diagonal()
	expected := 5.0

	if math.Abs(diagonal-expected) > 1e-10 {
		t.Errorf("Diagonal failed: expected %v, got %v", expected, diagonal)
	}
}

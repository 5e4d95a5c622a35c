package dxf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadworks/cadparse/pkg/geometry"
	"github.com/cadworks/cadparse/pkg/scene"
)

func dxfBuffer(pairs ...string) []byte {
	var data []byte
	for _, p := range pairs {
		data = append(data, p...)
		data = append(data, '\n')
	}
	return data
}

func TestDecodeEmptyBuffer(t *testing.T) {
	result := Decode(nil)

	require.Len(t, result.Layers, 1)
	assert.Equal(t, "default", result.Layers[0].ID)
	assert.Empty(t, result.Layers[0].Objects)
	assert.Equal(t, "mm", result.Units)
	assert.Equal(t, "DXF", result.Metadata["format"])
	assert.Equal(t, 0, result.Metadata["entityCount"])
	assert.Equal(t, geometry.NewVector3(0, 0, 0), result.Bounds.Min)
	assert.Equal(t, geometry.NewVector3(100, 100, 100), result.Bounds.Max)
}

func TestDecodeGarbage(t *testing.T) {
	result := Decode([]byte("this is not\na DXF file\nat all \xff\xfe"))

	require.Len(t, result.Layers, 1)
	assert.Empty(t, result.Layers[0].Objects)
	assert.Equal(t, 0, result.Metadata["entityCount"])
}

func TestDecodeLineWithoutLayerTable(t *testing.T) {
	data := dxfBuffer(
		"0", "LINE",
		"8", "0",
		"10", "0",
		"20", "0",
		"11", "100",
		"21", "100",
	)

	result := Decode(data)

	require.Len(t, result.Layers, 1)
	layer := result.Layers[0]
	assert.Equal(t, "default", layer.ID)
	assert.Equal(t, "Default", layer.Name)

	require.Len(t, layer.Objects, 1)
	obj := layer.Objects[0]
	assert.Equal(t, scene.ObjectLine, obj.Type)
	// Layer "0" does not exist; the reference is rewritten to the fallback.
	assert.Equal(t, "default", obj.Layer)

	line, ok := obj.Geometry.(scene.LineGeometry)
	require.True(t, ok)
	assert.Equal(t, geometry.NewVector2(0, 0), line.Start)
	assert.Equal(t, geometry.NewVector2(100, 100), line.End)

	assert.Equal(t, geometry.NewVector3(0, 0, 0), result.Bounds.Min)
	assert.Equal(t, geometry.NewVector3(100, 100, 0), result.Bounds.Max)
	assert.Equal(t, 1, result.Metadata["entityCount"])
}

func TestDecodeCircle(t *testing.T) {
	data := dxfBuffer(
		"0", "CIRCLE",
		"8", "default",
		"10", "50",
		"20", "50",
		"40", "25",
	)

	result := Decode(data)

	require.Len(t, result.Layers, 1)
	require.Len(t, result.Layers[0].Objects, 1)

	circle, ok := result.Layers[0].Objects[0].Geometry.(scene.CircleGeometry)
	require.True(t, ok)
	assert.Equal(t, geometry.NewVector2(50, 50), circle.Center)
	assert.Equal(t, 25.0, circle.Radius)
}

func TestDecodeCircleDefaultRadius(t *testing.T) {
	data := dxfBuffer(
		"0", "CIRCLE",
		"10", "5",
		"20", "5",
	)

	result := Decode(data)

	circle, ok := result.Layers[0].Objects[0].Geometry.(scene.CircleGeometry)
	require.True(t, ok)
	assert.Equal(t, 1.0, circle.Radius)
}

func TestDecodeLayerTable(t *testing.T) {
	data := dxfBuffer(
		"0", "LAYER",
		"2", "Walls",
		"62", "1",
		"0", "LAYER",
		"2", "Doors",
		"0", "LINE",
		"8", "Doors",
		"10", "1",
		"20", "2",
		"11", "3",
		"21", "4",
	)

	result := Decode(data)

	require.Len(t, result.Layers, 2)
	assert.Equal(t, "Walls", result.Layers[0].ID)
	assert.Equal(t, "#ff0000", result.Layers[0].Color)
	assert.True(t, result.Layers[0].Visible)
	assert.Equal(t, "Doors", result.Layers[1].ID)
	// Missing color index 62 defaults to white.
	assert.Equal(t, "#ffffff", result.Layers[1].Color)

	assert.Empty(t, result.Layers[0].Objects)
	require.Len(t, result.Layers[1].Objects, 1)
	assert.Equal(t, "Doors", result.Layers[1].Objects[0].Layer)
}

func TestDecodeUnmatchedLayerFallsToFirst(t *testing.T) {
	data := dxfBuffer(
		"0", "LAYER",
		"2", "Walls",
		"0", "LINE",
		"8", "NoSuchLayer",
		"10", "0",
		"20", "0",
		"11", "1",
		"21", "1",
	)

	result := Decode(data)

	require.Len(t, result.Layers, 1)
	require.Len(t, result.Layers[0].Objects, 1)
	assert.Equal(t, "Walls", result.Layers[0].Objects[0].Layer)
}

func TestDecodeIgnoresUnknownEntities(t *testing.T) {
	data := dxfBuffer(
		"0", "SPLINE",
		"8", "0",
		"0", "LINE",
		"10", "0",
		"20", "0",
		"11", "2",
		"21", "2",
	)

	result := Decode(data)

	assert.Equal(t, 1, result.Metadata["entityCount"])
}

func TestDecodeObjectIDsUnique(t *testing.T) {
	data := dxfBuffer(
		"0", "LINE",
		"10", "0", "20", "0", "11", "1", "21", "1",
		"0", "LINE",
		"10", "2", "20", "2", "11", "3", "21", "3",
	)

	result := Decode(data)

	objects := result.Layers[0].Objects
	require.Len(t, objects, 2)
	assert.NotEmpty(t, objects[0].ID)
	assert.NotEqual(t, objects[0].ID, objects[1].ID)
}

// Package stl decodes STL triangle meshes, in both binary and ASCII
// encodings, into the normalized scene model.
package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/cadworks/cadparse/pkg/geometry"
	"github.com/cadworks/cadparse/pkg/scene"
)

const (
	binaryHeaderSize = 80
	// Each binary record: 12-byte normal, three 12-byte vertices, 2-byte
	// attribute count.
	binaryRecordSize = 50
)

// Decode parses an STL buffer, detecting the encoding by size: binary STL
// declares its triangle count at offset 80, so a buffer whose length equals
// exactly 84 + 50*count is decoded as binary and anything else as ASCII
// text. A text file whose size happens to match the binary formula is an
// accepted false-negative of this heuristic.
//
// Decoding never fails; unreadable input yields an empty mesh.
func Decode(data []byte) *scene.ParsedScene {
	var vertices []geometry.Vector3
	var faces [][3]int

	if count, ok := binaryTriangleCount(data); ok {
		vertices, faces = decodeBinary(data, count)
	} else {
		vertices, faces = decodeASCII(data)
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
			"format":        "STL",
			"triangleCount": len(faces),
			"vertexCount":   len(vertices),
		},
	}
}

// binaryTriangleCount reads the declared triangle count and reports whether
// the buffer length matches the binary layout exactly.
func binaryTriangleCount(data []byte) (uint32, bool) {
	if len(data) < binaryHeaderSize+4 {
		return 0, false
	}
	count := binary.LittleEndian.Uint32(data[binaryHeaderSize:])
	expected := int64(binaryHeaderSize) + 4 + int64(binaryRecordSize)*int64(count)
	return count, int64(len(data)) == expected
}

func decodeBinary(data []byte, count uint32) ([]geometry.Vector3, [][3]int) {
	var vertices []geometry.Vector3
	var faces [][3]int

	offset := binaryHeaderSize + 4
	for i := uint32(0); i < count; i++ {
		// Guard every record read so a truncated buffer yields fewer
		// triangles instead of a panic.
		if offset+binaryRecordSize > len(data) {
			break
		}
		// Skip the 12-byte normal; the renderer recomputes normals.
		base := offset + 12
		for v := 0; v < 3; v++ {
			vertices = append(vertices, geometry.NewVector3(
				float64(readFloat32(data, base)),
				float64(readFloat32(data, base+4)),
				float64(readFloat32(data, base+8)),
			))
			base += 12
		}
		n := len(vertices)
		faces = append(faces, [3]int{n - 3, n - 2, n - 1})
		offset += binaryRecordSize
	}

	return vertices, faces
}

func readFloat32(data []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(data[offset:]))
}

func decodeASCII(data []byte) ([]geometry.Vector3, [][3]int) {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}

	var vertices []geometry.Vector3
	var faces [][3]int

	for i, line := range lines {
		if !strings.HasPrefix(line, "facet normal") {
			continue
		}

		// Collect the facet's three vertex lines; stop at the next facet.
		var corners []geometry.Vector3
		for j := i + 1; j < len(lines) && len(corners) < 3; j++ {
			if strings.HasPrefix(lines[j], "facet normal") {
				break
			}
			if !strings.HasPrefix(lines[j], "vertex") {
				continue
			}
			fields := strings.Fields(lines[j])
			if len(fields) < 4 {
				continue
			}
			x, _ := strconv.ParseFloat(fields[1], 64)
			y, _ := strconv.ParseFloat(fields[2], 64)
			z, _ := strconv.ParseFloat(fields[3], 64)
			corners = append(corners, geometry.NewVector3(x, y, z))
		}

		// Incomplete facets are dropped; no partial triangles.
		if len(corners) < 3 {
			continue
		}

		vertices = append(vertices, corners[0], corners[1], corners[2])
		n := len(vertices)
		faces = append(faces, [3]int{n - 3, n - 2, n - 1})
	}

	return vertices, faces
}

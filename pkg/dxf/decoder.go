package dxf

import (
	"strconv"

	"github.com/cadworks/cadparse/pkg/geometry"
	"github.com/cadworks/cadparse/pkg/scene"
)

// lookahead bounds the forward scan for a record's fields. DXF records in
// the drawings this engine sees fit comfortably inside 20 tokens before the
// next code-0 record.
const lookahead = 20

// Decode parses a DXF buffer into a scene. It never fails: garbled or
// non-DXF input simply yields a scene with one empty default layer and the
// placeholder bounding box.
func Decode(data []byte) *scene.ParsedScene {
	tokens := Tokenize(data)

	var layers []scene.Layer
	var entities []scene.DrawingObject

	for i, tok := range tokens {
		if tok.Code != "0" {
			continue
		}
		switch tok.Value {
		case "LAYER":
			layers = append(layers, decodeLayer(tokens, i))
		case "LINE":
			entities = append(entities, decodeLine(tokens, i))
		case "CIRCLE":
			entities = append(entities, decodeCircle(tokens, i))
		}
	}

	if len(layers) == 0 {
		layer := scene.DefaultLayer()
		layer.Color = ColorForIndex(defaultColorIndex)
		layers = []scene.Layer{layer}
	}

	// Group entities under their layer; unmatched references land on the
	// first layer so the scene never carries a dangling layer ID.
	var all []scene.DrawingObject
	for _, entity := range entities {
		target := 0
		for li := range layers {
			if layers[li].ID == entity.Layer {
				target = li
				break
			}
		}
		entity.Layer = layers[target].ID
		layers[target].Objects = append(layers[target].Objects, entity)
		all = append(all, entity)
	}

	return &scene.ParsedScene{
		Layers: layers,
		Bounds: scene.BoundsOfObjects(all),
		Units:  scene.DefaultUnits,
		Metadata: map[string]any{
			"format":      "DXF",
			"entityCount": len(entities),
		},
	}
}

// field scans the bounded lookahead window after position start for the
// first token with the given group code.
func field(tokens []Token, start int, code, fallback string) string {
	end := start + 1 + lookahead
	if end > len(tokens) {
		end = len(tokens)
	}
	for i := start + 1; i < end; i++ {
		if tokens[i].Code == "0" {
			break
		}
		if tokens[i].Code == code {
			return tokens[i].Value
		}
	}
	return fallback
}

func floatField(tokens []Token, start int, code string, fallback float64) float64 {
	raw := field(tokens, start, code, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}

func intField(tokens []Token, start int, code string, fallback int) int {
	raw := field(tokens, start, code, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func decodeLayer(tokens []Token, start int) scene.Layer {
	name := field(tokens, start, "2", "default")
	colorIndex := intField(tokens, start, "62", defaultColorIndex)

	return scene.Layer{
		ID:      name,
		Name:    name,
		Visible: true,
		Color:   ColorForIndex(colorIndex),
	}
}

func decodeLine(tokens []Token, start int) scene.DrawingObject {
	return scene.DrawingObject{
		ID:    scene.NewObjectID(),
		Type:  scene.ObjectLine,
		Layer: field(tokens, start, "8", "default"),
		Geometry: scene.LineGeometry{
			Start: geometry.NewVector2(
				floatField(tokens, start, "10", 0),
				floatField(tokens, start, "20", 0),
			),
			End: geometry.NewVector2(
				floatField(tokens, start, "11", 0),
				floatField(tokens, start, "21", 0),
			),
		},
		Properties: map[string]any{},
	}
}

func decodeCircle(tokens []Token, start int) scene.DrawingObject {
	return scene.DrawingObject{
		ID:    scene.NewObjectID(),
		Type:  scene.ObjectCircle,
		Layer: field(tokens, start, "8", "default"),
		Geometry: scene.CircleGeometry{
			Center: geometry.NewVector2(
				floatField(tokens, start, "10", 0),
				floatField(tokens, start, "20", 0),
			),
			Radius: floatField(tokens, start, "40", 1),
		},
		Properties: map[string]any{},
	}
}

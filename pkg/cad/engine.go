package cad

import (
	"log/slog"

	"github.com/cadworks/cadparse/pkg/dxf"
	"github.com/cadworks/cadparse/pkg/obj"
	"github.com/cadworks/cadparse/pkg/scene"
	"github.com/cadworks/cadparse/pkg/stl"
)

// Config configures the engine.
type Config struct {
	// Logger for debug messages. Defaults to slog.Default().
	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Engine dispatches file buffers to format decoders. It holds no mutable
// state, so a single value may serve concurrent Parse calls without locking.
type Engine struct {
	logger *slog.Logger
}

// New creates an Engine with the given configuration. The zero Config is
// valid.
func New(cfg Config) *Engine {
	cfg.defaults()
	return &Engine{logger: cfg.Logger}
}

// Parse decodes a complete file buffer into a scene. The filename is used
// solely for extension-based format routing; an extension outside the
// allow-list is the only input Parse refuses. Malformed content within a
// supported format degrades to the emptiest valid scene of that format
// instead of failing.
func (e *Engine) Parse(data []byte, filename string) (*scene.ParsedScene, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("parsing CAD file", "filename", filename, "format", format.String(), "bytes", len(data))

	switch format {
	case FormatDXF:
		return dxf.Decode(data), nil
	case FormatOBJ:
		return obj.Decode(data), nil
	case FormatSTL:
		return stl.Decode(data), nil
	case FormatDWG:
		return stubScene("DWG", "DWG is a proprietary binary format; decoding requires a specialized library"), nil
	case FormatSTEP:
		return stubScene("STEP", "STEP decoding requires a dedicated geometry kernel library"), nil
	case FormatIGES:
		return stubScene("IGES", "IGES decoding requires a dedicated geometry kernel library"), nil
	default:
		// Unreachable for DetectFormat-gated input.
		return nil, &UnsupportedFormatError{}
	}
}

// IsSupportedFormat reports whether Parse would accept the filename.
func (e *Engine) IsSupportedFormat(filename string) bool {
	return IsSupportedFormat(filename)
}

// stubScene acknowledges a recognized but undecoded format: one empty
// default layer, the placeholder bounding box, and an explanatory note so
// callers can treat every allow-listed extension uniformly.
func stubScene(format, note string) *scene.ParsedScene {
	return &scene.ParsedScene{
		Layers: []scene.Layer{scene.DefaultLayer()},
		Bounds: scene.DefaultBounds(),
		Units:  scene.DefaultUnits,
		Metadata: map[string]any{
			"format": format,
			"note":   note,
		},
	}
}

// Package cad is the entry point of the CAD decoding engine. It routes a
// raw file buffer to the decoder matching the filename extension and returns
// the normalized scene.
package cad

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is the closed set of CAD formats the engine recognizes.
type Format int

const (
	// FormatUnknown is never produced for an allow-listed extension; it
	// exists so the dispatch switch has an explicit rejected arm.
	FormatUnknown Format = iota
	FormatDWG
	FormatDXF
	FormatSTEP
	FormatIGES
	FormatOBJ
	FormatSTL
)

// String returns the format's display name.
func (f Format) String() string {
	switch f {
	case FormatDWG:
		return "DWG"
	case FormatDXF:
		return "DXF"
	case FormatSTEP:
		return "STEP"
	case FormatIGES:
		return "IGES"
	case FormatOBJ:
		return "OBJ"
	case FormatSTL:
		return "STL"
	default:
		return "unknown"
	}
}

// extensions maps every allow-listed filename extension to its format.
var extensions = map[string]Format{
	".dwg":  FormatDWG,
	".dxf":  FormatDXF,
	".step": FormatSTEP,
	".stp":  FormatSTEP,
	".iges": FormatIGES,
	".igs":  FormatIGES,
	".obj":  FormatOBJ,
	".stl":  FormatSTL,
}

// UnsupportedFormatError reports a filename extension outside the
// allow-list. It is the only error Parse returns.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported CAD format: %q", e.Ext)
}

// DetectFormat resolves a filename to its CAD format. The extension is the
// substring from the last dot, compared case-insensitively; file contents
// are never inspected.
func DetectFormat(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	format, ok := extensions[ext]
	if !ok {
		return FormatUnknown, &UnsupportedFormatError{Ext: ext}
	}
	return format, nil
}

// IsSupportedFormat reports whether the filename's extension is in the
// allow-list.
func IsSupportedFormat(filename string) bool {
	_, err := DetectFormat(filename)
	return err == nil
}

// SupportedExtensions returns the allow-listed extensions in stable order.
func SupportedExtensions() []string {
	return []string{".dwg", ".dxf", ".step", ".stp", ".iges", ".igs", ".obj", ".stl"}
}

package dxf

// aciColors maps the low AutoCAD Color Index range to display hex colors.
// Indices past the table fall back to white; the full 256-entry ACI palette
// is deliberately out of scope.
var aciColors = []string{
	0: "#000000", // black (ByBlock)
	1: "#ff0000", // red
	2: "#ffff00", // yellow
	3: "#00ff00", // green
	4: "#00ffff", // cyan
	5: "#0000ff", // blue
	6: "#ff00ff", // magenta
	7: "#ffffff", // white
	8: "#808080", // dark gray
	9: "#c0c0c0", // light gray
}

// defaultColorIndex is ACI 7 (white), the DXF default for layers without an
// explicit color field.
const defaultColorIndex = 7

// ColorForIndex returns the display hex color for an ACI color index.
func ColorForIndex(index int) string {
	if index < 0 || index >= len(aciColors) {
		return aciColors[defaultColorIndex]
	}
	return aciColors[index]
}

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cadworks/cadparse/pkg/analysis"
	"github.com/cadworks/cadparse/pkg/cad"
	"github.com/cadworks/cadparse/pkg/scene"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a CAD file",
	Long:  "Parse a CAD file and show its layers, object counts, bounding box, and format metadata.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	result, err := cad.New(cad.Config{}).Parse(data, filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing CAD file: %v\n", err)
		os.Exit(1)
	}

	stats := analysis.AnalyzeScene(result)

	fmt.Println("CAD File Information")
	fmt.Println("====================")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Format: %v\n", result.Metadata["format"])
	fmt.Printf("Units: %s\n\n", result.Units)

	if note, ok := result.Metadata["note"]; ok {
		fmt.Printf("Note: %v\n\n", note)
	}

	fmt.Println("Scene Statistics:")
	fmt.Printf("  Layers: %d\n", stats.LayerCount)
	fmt.Printf("  Objects: %d\n", stats.ObjectCount)
	if stats.TriangleCount > 0 {
		fmt.Printf("  Triangles: %d\n", stats.TriangleCount)
		fmt.Printf("  Vertices: %d\n", stats.VertexCount)
		fmt.Printf("  Surface Area: %.6f square units\n", stats.SurfaceArea)
	}
	for _, typ := range sortedTypes(stats) {
		fmt.Printf("  %s objects: %d\n", typ, stats.ObjectsByType[scene.ObjectType(typ)])
	}
	fmt.Println()

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(stats.Bounds.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(stats.Bounds.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(stats.Bounds.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", stats.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", stats.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", stats.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n", stats.Bounds.Diagonal())
}

func sortedTypes(stats *analysis.SceneStats) []string {
	types := make([]string, 0, len(stats.ObjectsByType))
	for typ := range stats.ObjectsByType {
		types = append(types, string(typ))
	}
	sort.Strings(types)
	return types
}

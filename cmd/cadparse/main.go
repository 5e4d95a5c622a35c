package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cadworks/cadparse/version"
)

var rootCmd = &cobra.Command{
	Use:   "cadparse",
	Short: "A CLI tool for inspecting CAD files",
	Long: `cadparse decodes CAD files (DXF, OBJ, STL, plus recognized DWG/STEP/IGES
stubs) into a normalized scene and prints layers, objects, and measurements.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cadworks/cadparse/pkg/cad"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported CAD file extensions",
	Run:   runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, args []string) {
	fmt.Println("Supported extensions:")
	for _, ext := range cad.SupportedExtensions() {
		format, _ := cad.DetectFormat("file" + ext)
		fmt.Printf("  %-6s -> %s\n", ext, format)
	}
}

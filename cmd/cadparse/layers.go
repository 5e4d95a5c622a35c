package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cadworks/cadparse/pkg/cad"
)

var layersCmd = &cobra.Command{
	Use:   "layers [file]",
	Short: "List the layer table of a CAD file",
	Long:  "Parse a CAD file and list each layer with its display color and object count.",
	Args:  cobra.ExactArgs(1),
	Run:   runLayers,
}

func init() {
	rootCmd.AddCommand(layersCmd)
}

func runLayers(cmd *cobra.Command, args []string) {
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

	fmt.Printf("Layers in %s\n", filename)
	fmt.Println("====================")
	for _, layer := range result.Layers {
		color := layer.Color
		if color == "" {
			color = "-"
		}
		fmt.Printf("%-20s %-8s %4d objects\n", layer.Name, color, len(layer.Objects))
	}
}

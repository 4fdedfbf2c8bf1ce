package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/linuxing3/weekend-raytracer-wgpu/internal/scene"
	"github.com/linuxing3/weekend-raytracer-wgpu/internal/ui"
)

var (
	scenePath string
	mode      string
)

var rootCmd = &cobra.Command{
	Use:   "raytrace",
	Short: "Normal-shading sphere raytracer with an interactive viewer",
	Long: `raytrace renders sphere scenes by casting one ray per pixel sample and
shading hits from the surface normal. Run without a subcommand to open the
interactive viewer; use "raytrace render" for headless output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Printf("viewer: scene=%s mode=%s\n", scenePath, mode)
		sc, err := loadScene(scenePath)
		if err != nil {
			return err
		}
		return ui.Run(sc, scenePath, mode)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&scenePath, "scene", "", "path to scene JSON file (built-in scene if empty)")
	rootCmd.PersistentFlags().StringVar(&mode, "mode", "preview", "render mode: preview or final")
}

// loadScene reads the scene file, or falls back to the built-in scene when
// no path is given.
func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Default(), nil
	}
	sc, err := scene.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	return sc, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linuxing3/weekend-raytracer-wgpu/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("raytrace %s (%s, %s)\n", version.GetVersion(), version.GitCommit, version.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

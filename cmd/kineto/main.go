// Command kineto lays out graph fragments headless (layout), serves a live
// force-directed viewer (serve), and generates demo fragments (demo).
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kinetograph/kineto/internal/ui"
)

var version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:   "kineto",
	Short: "kineto — incremental force-directed graph layout",
	Long: ui.Brand.Sprint("kineto") + " — incremental force-directed graph layout\n" +
		ui.Subtle.Sprint("Merge fragments, settle the physics, export SVG or watch live"),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("kineto {{ .Version }}\n")
	rootCmd.AddCommand(
		layoutCmd(),
		serveCmd(),
		demoCmd(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		ui.Bad.Fprintf(os.Stderr, "kineto: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kinetograph/kineto/engine"
	"github.com/kinetograph/kineto/export"
	"github.com/kinetograph/kineto/fragment"
	"github.com/kinetograph/kineto/internal/ui"
	"github.com/kinetograph/kineto/merge"
	"github.com/kinetograph/kineto/simulation"
)

func layoutCmd() *cobra.Command {
	var (
		out      string
		mode     string
		settings string
		maxTicks int
	)

	cmd := &cobra.Command{
		Use:   "layout <fragment.yaml|json> [more fragments...]",
		Short: "Settle fragments headless and write an SVG snapshot",
		Long: `Load one or more graph fragments, run the physics simulation to
rest without a display, and write the settled layout as SVG.

  kineto layout graph.yaml                      # replace-load, graph.svg
  kineto layout base.yaml extra.yaml -o out.svg # later files append
  kineto layout graph.yaml --settings viz.toml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []engine.Option{}
			if settings != "" {
				s, err := loadSettings(settings)
				if err != nil {
					return err
				}
				opts = append(opts, engine.WithSettings(s))
			}
			e := engine.New(opts...)

			firstMode, err := merge.ParseMode(mode)
			if err != nil {
				return err
			}
			for i, path := range args {
				f, err := fragment.LoadFile(path)
				if err != nil {
					return err
				}
				m := firstMode
				if i > 0 {
					// Subsequent files always union onto the first.
					m = merge.Append
				}
				res, err := e.Load(f, m)
				if err != nil {
					return fmt.Errorf("load %s: %w", path, err)
				}
				ui.Info.Printf("  %s: +%d nodes, +%d edges\n",
					filepath.Base(path), len(res.AddedNodes), len(res.AddedEdges))

				if err := settleEngine(e, maxTicks); err != nil {
					return err
				}
			}

			frame := e.Tick()
			if err := export.WriteSVGFile(frame, out, export.DefaultSVGOptions()); err != nil {
				return err
			}
			ui.Good.Printf("  %s wrote %s (%d nodes, %d edges)\n",
				ui.StatusIcon(true), out, len(frame.Nodes), len(frame.Edges))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "graph.svg", "Output SVG path")
	cmd.Flags().StringVarP(&mode, "mode", "m", "replace", "Load mode for the first fragment: replace|append")
	cmd.Flags().StringVarP(&settings, "settings", "s", "", "Settings file (.toml or .yaml)")
	cmd.Flags().IntVar(&maxTicks, "max-ticks", 2000, "Give up if the layout has not settled by then")
	return cmd
}

// settleEngine ticks until the simulation stops or the budget runs out.
func settleEngine(e *engine.Engine, maxTicks int) error {
	for i := 0; i < maxTicks; i++ {
		e.Tick()
		if e.State() == simulation.Stopped {
			return nil
		}
	}
	return fmt.Errorf("layout did not settle within %d ticks", maxTicks)
}

// loadSettings dispatches on the settings file extension.
func loadSettings(path string) (engine.Settings, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return engine.LoadSettingsTOML(path)
	case ".yaml", ".yml":
		return engine.LoadSettingsYAML(path)
	default:
		return engine.DefaultSettings(), fmt.Errorf("unsupported settings format: %s", path)
	}
}

package engine

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/kinetograph/kineto/simulation"
	"github.com/kinetograph/kineto/vizgraph"
)

// PhysicsSettings tunes the force simulation. Changes apply on the next
// tick; they never reseed positions.
type PhysicsSettings struct {
	Enabled      bool    `toml:"enabled" yaml:"enabled"`
	Charge       float64 `toml:"charge" yaml:"charge"`
	LinkDistance float64 `toml:"link_distance" yaml:"link_distance"`
	Gravity      float64 `toml:"gravity" yaml:"gravity"`
	Friction     float64 `toml:"friction" yaml:"friction"`
}

// VisualSettings controls rendered appearance.
type VisualSettings struct {
	// NodeSize scales every node's degree-derived size hint; 1.0 leaves
	// the hints untouched.
	NodeSize   float64 `toml:"node_size" yaml:"node_size"`
	LinkWidth  float64 `toml:"link_width" yaml:"link_width"`
	ShowLabels bool    `toml:"show_labels" yaml:"show_labels"`
	ShowArrows bool    `toml:"show_arrows" yaml:"show_arrows"`
}

// InteractionSettings gates user gestures.
type InteractionSettings struct {
	EnableDrag         bool `toml:"enable_drag" yaml:"enable_drag"`
	EnableZoom         bool `toml:"enable_zoom" yaml:"enable_zoom"`
	EnablePan          bool `toml:"enable_pan" yaml:"enable_pan"`
	HighlightNeighbors bool `toml:"highlight_neighbors" yaml:"highlight_neighbors"`
}

// Settings is the full engine configuration. Out-of-range values are the
// caller's responsibility; the engine applies them as given.
type Settings struct {
	Physics     PhysicsSettings     `toml:"physics" yaml:"physics"`
	Visual      VisualSettings      `toml:"visual" yaml:"visual"`
	Interaction InteractionSettings `toml:"interaction" yaml:"interaction"`
}

// DefaultSettings returns the engine defaults.
func DefaultSettings() Settings {
	return Settings{
		Physics: PhysicsSettings{
			Enabled:      true,
			Charge:       simulation.DefaultCharge,
			LinkDistance: simulation.DefaultLinkDistance,
			Gravity:      simulation.DefaultGravity,
			Friction:     simulation.DefaultFriction,
		},
		Visual: VisualSettings{
			NodeSize:   1.0,
			LinkWidth:  1.0,
			ShowLabels: true,
			ShowArrows: true,
		},
		Interaction: InteractionSettings{
			EnableDrag:         true,
			EnableZoom:         true,
			EnablePan:          true,
			HighlightNeighbors: true,
		},
	}
}

// LoadSettingsTOML reads a TOML settings file over the defaults, so a
// partial file overrides only what it names.
func LoadSettingsTOML(path string) (Settings, error) {
	s := DefaultSettings()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("engine: decode settings %s: %w", path, err)
	}
	return s, nil
}

// LoadSettingsYAML reads a YAML settings file over the defaults.
func LoadSettingsYAML(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("engine: read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("engine: decode settings %s: %w", path, err)
	}
	return s, nil
}

// simConfig maps the physics section onto the simulation's tick-time view.
func (s Settings) simConfig() simulation.Config {
	return simulation.Config{
		Enabled:      s.Physics.Enabled,
		Charge:       s.Physics.Charge,
		LinkDistance: s.Physics.LinkDistance,
		Gravity:      s.Physics.Gravity,
		Friction:     s.Physics.Friction,
	}
}

// nodeScale converts the NodeSize multiplier into a radius factor over the
// degree-derived hints.
func (s Settings) nodeScale() float64 {
	if s.Visual.NodeSize <= 0 {
		return 1
	}
	return s.Visual.NodeSize
}

// renderedRadius is the on-screen (layout-space) radius of a node under
// these settings.
func (s Settings) renderedRadius(n *vizgraph.Node) float64 {
	size := n.Size
	if size <= 0 {
		size = vizgraph.DefaultNodeSize
	}
	return size * s.nodeScale()
}

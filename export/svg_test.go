package export_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinetograph/kineto/engine"
	"github.com/kinetograph/kineto/export"
	"github.com/kinetograph/kineto/fragment"
	"github.com/kinetograph/kineto/merge"
	"github.com/kinetograph/kineto/simulation"
)

// snapshotFrame lays out a graph exercising all three path kinds and
// returns its settled frame.
func snapshotFrame(t *testing.T) engine.Frame {
	t.Helper()
	e := engine.New()
	_, err := e.Load(fragment.Fragment{
		Nodes: []fragment.NodeSpec{
			{ID: "x", Label: "X <node>", Group: "docs"},
			{ID: "y", Label: "Y", Group: "terms"},
		},
		Edges: []fragment.EdgeSpec{
			{From: "x", To: "y", Type: "CITES", Weight: 1},
			{From: "x", To: "y", Type: "QUOTES", Weight: 1},
			{From: "y", To: "y", Type: "SELF", Weight: 1},
		},
	}, merge.Replace)
	require.NoError(t, err)

	var f engine.Frame
	for i := 0; i < 1000; i++ {
		f = e.Tick()
		if e.State() == simulation.Stopped {
			return f
		}
	}
	t.Fatal("layout did not settle")
	return f
}

// TestRenderSVG_AllPathKinds verifies each path family renders with its own
// SVG command.
func TestRenderSVG_AllPathKinds(t *testing.T) {
	svg := export.RenderSVG(snapshotFrame(t), export.DefaultSVGOptions())

	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`))
	assert.Equal(t, 2, strings.Count(svg, "<circle"), "one circle per node")
	assert.Equal(t, 2, strings.Count(svg, " Q "), "both parallel edges fan into quadratic arcs")
	assert.Equal(t, 1, strings.Count(svg, " C "), "the self-loop is a cubic hairpin")
	assert.Equal(t, 2, strings.Count(svg, `marker-end="url(#arrow)"`),
		"arrowheads on directed edges, none on the self-loop")
	assert.Contains(t, svg, "X &lt;node&gt;", "labels are XML-escaped")
	assert.Contains(t, svg, ">CITES<")
	assert.Contains(t, svg, "rotate(", "edge labels carry their tangent rotation")
}

// TestRenderSVG_HonorsFrameVisibility verifies label suppression follows
// the frame, not the options.
func TestRenderSVG_HonorsFrameVisibility(t *testing.T) {
	f := snapshotFrame(t)
	f.ShowLabels = false

	svg := export.RenderSVG(f, export.DefaultSVGOptions())
	assert.NotContains(t, svg, "node-label\"")
	assert.NotContains(t, svg, ">CITES<")
}

// TestWriteSVGFile verifies the file round trip.
func TestWriteSVGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.svg")
	require.NoError(t, export.WriteSVGFile(snapshotFrame(t), path, export.DefaultSVGOptions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "</svg>\n"))
}

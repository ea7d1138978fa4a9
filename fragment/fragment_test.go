package fragment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinetograph/kineto/fragment"
)

// TestDecodeYAML verifies field mapping and the optional position hint.
func TestDecodeYAML(t *testing.T) {
	payload := []byte(`
nodes:
  - id: n1
    label: First
    group: concept
    position: {x: 10, y: -5}
  - id: n2
edges:
  - from: n1
    to: n2
    type: LINK
    weight: 0.8
    category: semantic
`)
	f, err := fragment.DecodeYAML(payload)
	require.NoError(t, err)

	require.Len(t, f.Nodes, 2)
	assert.Equal(t, "First", f.Nodes[0].Label)
	require.NotNil(t, f.Nodes[0].Position, "position hint must round-trip")
	assert.Equal(t, 10.0, f.Nodes[0].Position.X)
	assert.Nil(t, f.Nodes[1].Position, "absent position must stay nil")

	require.Len(t, f.Edges, 1)
	assert.Equal(t, "LINK", f.Edges[0].Type)
	assert.Equal(t, 0.8, f.Edges[0].Weight)
	assert.Equal(t, "semantic", f.Edges[0].Category)
}

// TestDecodeJSON verifies the JSON decoder shares the YAML field names.
func TestDecodeJSON(t *testing.T) {
	payload := []byte(`{"nodes":[{"id":"a"},{"id":"b"}],"edges":[{"from":"a","to":"b","type":"REL"}]}`)
	f, err := fragment.DecodeJSON(payload)
	require.NoError(t, err)
	assert.Len(t, f.Nodes, 2)
	assert.Equal(t, "REL", f.Edges[0].Type)
}

// TestValidate_Sentinels verifies each malformed entry maps to its sentinel.
func TestValidate_Sentinels(t *testing.T) {
	_, err := fragment.DecodeYAML([]byte("nodes:\n  - label: no-id\n"))
	assert.ErrorIs(t, err, fragment.ErrEmptyFragmentNodeID)

	_, err = fragment.DecodeYAML([]byte("edges:\n  - from: a\n    type: X\n"))
	assert.ErrorIs(t, err, fragment.ErrDanglingEdge)

	_, err = fragment.DecodeYAML([]byte("edges:\n  - from: a\n    to: b\n"))
	assert.ErrorIs(t, err, fragment.ErrEmptyFragmentType)
}

// TestValidate_EdgeOntoDisplayedGraph verifies edges may reference nodes
// absent from the fragment itself (append merges attach onto the displayed
// graph).
func TestValidate_EdgeOntoDisplayedGraph(t *testing.T) {
	f := fragment.Fragment{
		Nodes: []fragment.NodeSpec{{ID: "new"}},
		Edges: []fragment.EdgeSpec{{From: "new", To: "already-displayed", Type: "REL"}},
	}
	assert.NoError(t, f.Validate(), "cross-fragment endpoints are legitimate")
}

// TestStar verifies topology, determinism and option plumbing.
func TestStar(t *testing.T) {
	_, err := fragment.Star(1)
	assert.ErrorIs(t, err, fragment.ErrTooFewNodes)

	f, err := fragment.Star(5, fragment.WithIDPrefix("s-"), fragment.WithEdgeType("SPOKE"))
	require.NoError(t, err)
	assert.Len(t, f.Nodes, 5)
	assert.Len(t, f.Edges, 4)
	assert.Equal(t, "s-hub", f.Nodes[0].ID)
	for _, e := range f.Edges {
		assert.Equal(t, "s-hub", e.From, "all spokes leave the hub")
		assert.Equal(t, "SPOKE", e.Type)
	}
}

// TestCycle verifies the ring closes.
func TestCycle(t *testing.T) {
	_, err := fragment.Cycle(2)
	assert.ErrorIs(t, err, fragment.ErrTooFewNodes)

	f, err := fragment.Cycle(4)
	require.NoError(t, err)
	assert.Len(t, f.Edges, 4)
	assert.Equal(t, "3", f.Edges[3].From)
	assert.Equal(t, "0", f.Edges[3].To, "last edge must close the ring")
}

// TestRandomSparse verifies validation, determinism and the density bounds.
func TestRandomSparse(t *testing.T) {
	_, err := fragment.RandomSparse(10, 1.5)
	assert.ErrorIs(t, err, fragment.ErrBadProbability)

	a, err := fragment.RandomSparse(12, 0.3, fragment.WithSeed(42))
	require.NoError(t, err)
	b, err := fragment.RandomSparse(12, 0.3, fragment.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must yield the same fragment")

	full, err := fragment.RandomSparse(6, 1)
	require.NoError(t, err)
	assert.Len(t, full.Edges, 15, "p=1 must draw every candidate pair")

	empty, err := fragment.RandomSparse(6, 0)
	require.NoError(t, err)
	assert.Empty(t, empty.Edges, "p=0 must draw nothing")
}

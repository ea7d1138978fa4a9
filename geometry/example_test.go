package geometry_test

import (
	"fmt"

	"github.com/kinetograph/kineto/geometry"
	"github.com/kinetograph/kineto/vizgraph"
)

// ExampleAssignCurveOffsets demonstrates the symmetric fan-out of three
// parallel edges between the same pair of nodes.
func ExampleAssignCurveOffsets() {
	g := vizgraph.NewGraph()
	_ = g.AddNode(&vizgraph.Node{ID: "X"})
	_ = g.AddNode(&vizgraph.Node{ID: "Y"})
	for _, typ := range []string{"CITES", "REFUTES", "SUPPORTS"} {
		_, _ = g.AddEdge("X", "Y", typ, 1)
	}

	edges := g.Edges()
	geometry.AssignCurveOffsets(edges)
	for _, e := range edges {
		fmt.Printf("%s: %.0f\n", e.Type, e.CurveOffset)
	}
	// Output:
	// CITES: -36
	// REFUTES: 0
	// SUPPORTS: 36
}

// ExampleStraightPath shows boundary clipping: the path stops one gap short
// of the target node's radius.
func ExampleStraightPath() {
	p := geometry.StraightPath(
		geometry.Point{X: 0, Y: 0},
		geometry.Point{X: 100, Y: 0},
		8, // target radius
	)
	fmt.Printf("end: (%.0f, %.0f)\n", p.End.X, p.End.Y)
	fmt.Printf("label at: (%.0f, %.0f), angle %.0f°\n", p.LabelAt.X, p.LabelAt.Y, p.LabelAngleDeg)
	// Output:
	// end: (90, 0)
	// label at: (50, 0), angle 0°
}

// ExampleTransform_Apply maps a layout point to screen space under pan/zoom.
func ExampleTransform_Apply() {
	tr := geometry.Transform{TranslateX: 400, TranslateY: 300, Scale: 2}
	screen := tr.Apply(geometry.Point{X: 10, Y: -5})
	fmt.Printf("(%.0f, %.0f)\n", screen.X, screen.Y)
	// Output:
	// (420, 290)
}

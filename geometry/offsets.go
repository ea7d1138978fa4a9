package geometry

import "github.com/kinetograph/kineto/vizgraph"

// AssignCurveOffsets recomputes the curve offset of every edge from the
// multiplicity of its unordered node pair.
//
// Behavior:
//  1. Group edges by unordered (From, To) pair; self-loops form their own
//     single-endpoint groups and fan out by the same rule.
//  2. A group of size 1 gets offset 0 (straight line).
//  3. A group of size n > 1 gets offsets (i - (n-1)/2)·CurveSpacing in the
//     group's insertion order, symmetric around zero, so parallel edges fan
//     out evenly and their offsets sum to zero.
//
// Call whenever the edge set changes (merge, filter); offsets are
// independent of node positions, so never per tick.
//
// Complexity: O(E). Memory: O(E) for the grouping map.
func AssignCurveOffsets(edges []*vizgraph.Edge) {
	groups := make(map[string][]*vizgraph.Edge, len(edges))
	for _, e := range edges {
		key := e.PairKey()
		groups[key] = append(groups[key], e)
	}

	for _, group := range groups {
		n := len(group)
		if n == 1 {
			group[0].CurveOffset = 0
			continue
		}
		half := float64(n-1) / 2
		for i, e := range group {
			e.CurveOffset = (float64(i) - half) * CurveSpacing
		}
	}
}

// Package fragment defines the Graph Fragment input boundary: the
// nodes+edges payload a data-fetch collaborator hands the engine after a
// search, neighborhood or path query against the remote knowledge-graph API.
//
// A Fragment is plain data — no positions are required (they are optional
// hints), edges may reference nodes that only exist in the already-displayed
// graph, and the same fragment may be delivered twice; the merge package
// deals with all of that.
//
// Two decoders are provided (YAML and JSON share the same field names), plus
// deterministic topology generators (Star, Cycle, RandomSparse) used by
// demos, benchmarks and merge tests. Generators take functional options and
// a seed, so the same inputs always produce the same fragment.
//
// Errors:
//
//	ErrEmptyFragmentNodeID - a node entry without an id.
//	ErrEmptyFragmentType   - an edge entry without a relationship type.
//	ErrDanglingEdge        - an edge entry missing from or to.
//	ErrTooFewNodes         - a generator invoked below its minimum size.
//	ErrBadProbability      - RandomSparse probability outside [0, 1].
package fragment

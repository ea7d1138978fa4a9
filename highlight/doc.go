// Package highlight resolves, per frame, which nodes and edges are
// emphasized versus dimmed, based on transient hover state and the sticky
// focus mode.
//
// Four mutually exclusive visual states exist, evaluated in strict
// precedence order: edge-hover > focus mode > node-hover > neutral.
//
//   - Neutral: everything at full opacity, base stroke.
//   - Node-hover: the hovered node and its direct neighbors stay at full
//     opacity (incident edges also widen); everything else dims to the
//     light level. Edge multiplicities are unaffected.
//   - Focus mode (explicit, sticky until cleared): the focused node and its
//     direct neighbors stay visible; everything else dims to the heavy
//     level — an order of magnitude more transparent than hover dim — and
//     emphasized edges keep their base stroke width, only opacity changes.
//     Focus must read as "everything else is background", never as a
//     visual near-tie with hover.
//   - Edge-hover: the hovered edge gets full opacity and double stroke;
//     every other edge dims to the light level regardless of focus state.
//
// The precedence is applied per element class: when edge-hover and focus
// coexist, the edge-hover rule decides every edge while focus still decides
// the nodes; when node-hover and focus coexist, focus's heavier dim wins
// for the nodes.
package highlight

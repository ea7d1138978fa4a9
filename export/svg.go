package export

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/kinetograph/kineto/engine"
	"github.com/kinetograph/kineto/geometry"
)

// groupPalette cycles fill colors over group tags in order of first
// appearance, so the same frame always colors the same way.
var groupPalette = []string{
	"#4e79a7",
	"#f28e2b",
	"#59a14f",
	"#e15759",
	"#b07aa1",
	"#76b7b2",
	"#edc948",
	"#9c755f",
}

// SVGOptions controls snapshot rendering.
type SVGOptions struct {
	// Padding is the margin around the layout's bounding box.
	Padding float64

	// Background is the document fill; empty means transparent.
	Background string

	// FontFamily styles node and edge labels.
	FontFamily string

	// MinWidth/MinHeight floor the viewBox so tiny graphs stay legible.
	MinWidth  float64
	MinHeight float64
}

// DefaultSVGOptions returns the snapshot defaults.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Padding:    40,
		Background: "#ffffff",
		FontFamily: "system-ui, Arial",
		MinWidth:   200,
		MinHeight:  100,
	}
}

// RenderSVG renders the frame's layout-space geometry into an SVG document.
// The pan/zoom transform is ignored: a snapshot frames the whole layout via
// its own viewBox instead of the live viewport.
func RenderSVG(f engine.Frame, opts SVGOptions) string {
	if opts.Padding <= 0 {
		opts.Padding = DefaultSVGOptions().Padding
	}
	if opts.FontFamily == "" {
		opts.FontFamily = DefaultSVGOptions().FontFamily
	}

	minX, minY, w, h := bounds(f, opts)

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`,
		minX, minY, w, h, w, h))
	buf.WriteByte('\n')

	writeDefs(&buf, opts)

	if opts.Background != "" {
		buf.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`,
			minX, minY, w, h, opts.Background))
		buf.WriteByte('\n')
	}

	// Edges go first so nodes paint over their endpoints.
	for _, e := range f.Edges {
		writeEdge(&buf, e, f.ShowLabels)
	}

	colors := assignGroupColors(f)
	for _, n := range f.Nodes {
		writeNode(&buf, n, colors[n.Group], f.ShowLabels)
	}

	buf.WriteString("</svg>\n")
	return buf.String()
}

// WriteSVGFile renders a frame and writes it to a file.
func WriteSVGFile(f engine.Frame, path string, opts SVGOptions) error {
	if err := os.WriteFile(path, []byte(RenderSVG(f, opts)), 0o644); err != nil {
		return fmt.Errorf("export: write svg %s: %w", path, err)
	}
	return nil
}

// bounds computes the padded layout-space bounding box of the frame.
func bounds(f engine.Frame, opts SVGOptions) (minX, minY, w, h float64) {
	first := true
	var maxX, maxY float64
	grow := func(x, y, r float64) {
		if first {
			minX, maxX = x-r, x+r
			minY, maxY = y-r, y+r
			first = false
			return
		}
		minX = min(minX, x-r)
		maxX = max(maxX, x+r)
		minY = min(minY, y-r)
		maxY = max(maxY, y+r)
	}

	for _, n := range f.Nodes {
		grow(n.Pos.X, n.Pos.Y, n.Radius)
	}
	for _, e := range f.Edges {
		// Control points bound the curve, so including them bounds the path.
		grow(e.Path.Start.X, e.Path.Start.Y, 0)
		grow(e.Path.End.X, e.Path.End.Y, 0)
		if e.Path.Kind != geometry.Straight {
			grow(e.Path.Control1.X, e.Path.Control1.Y, 0)
		}
		if e.Path.Kind == geometry.SelfLoop {
			grow(e.Path.Control2.X, e.Path.Control2.Y, 0)
		}
	}

	minX -= opts.Padding
	minY -= opts.Padding
	maxX += opts.Padding
	maxY += opts.Padding

	w = max(maxX-minX, opts.MinWidth)
	h = max(maxY-minY, opts.MinHeight)
	return minX, minY, w, h
}

func writeDefs(buf *bytes.Buffer, opts SVGOptions) {
	buf.WriteString(`<defs>`)
	buf.WriteString(`<style>`)
	buf.WriteString(`.edge { fill: none; stroke: #999; }`)
	buf.WriteString(fmt.Sprintf(`.edge-label { font-family: %s; font-size: 9px; fill: #666; text-anchor: middle; }`, opts.FontFamily))
	buf.WriteString(fmt.Sprintf(`.node-label { font-family: %s; font-size: 11px; fill: #333; text-anchor: middle; }`, opts.FontFamily))
	buf.WriteString(`</style>`)
	buf.WriteString(`<marker id="arrow" markerWidth="10" markerHeight="7" refX="9" refY="3.5" orient="auto">`)
	buf.WriteString(`<polygon points="0 0, 10 3.5, 0 7" fill="#999"/>`)
	buf.WriteString(`</marker>`)
	buf.WriteString(`</defs>`)
	buf.WriteByte('\n')
}

// writeEdge emits one edge path plus its rotated label.
func writeEdge(buf *bytes.Buffer, e engine.FrameEdge, showLabels bool) {
	var d string
	p := e.Path
	switch p.Kind {
	case geometry.Quadratic:
		d = fmt.Sprintf("M %.1f %.1f Q %.1f %.1f %.1f %.1f",
			p.Start.X, p.Start.Y, p.Control1.X, p.Control1.Y, p.End.X, p.End.Y)
	case geometry.SelfLoop:
		d = fmt.Sprintf("M %.1f %.1f C %.1f %.1f %.1f %.1f %.1f %.1f",
			p.Start.X, p.Start.Y,
			p.Control1.X, p.Control1.Y,
			p.Control2.X, p.Control2.Y,
			p.End.X, p.End.Y)
	default:
		d = fmt.Sprintf("M %.1f %.1f L %.1f %.1f",
			p.Start.X, p.Start.Y, p.End.X, p.End.Y)
	}

	marker := ""
	if e.ShowArrow {
		marker = ` marker-end="url(#arrow)"`
	}
	buf.WriteString(fmt.Sprintf(`<path d="%s" class="edge" stroke-width="%.2f" opacity="%.3f"%s/>`,
		d, e.Width, e.Emphasis.Opacity, marker))
	buf.WriteByte('\n')

	if showLabels && e.Type != "" {
		buf.WriteString(fmt.Sprintf(
			`<text x="%.1f" y="%.1f" class="edge-label" opacity="%.3f" transform="rotate(%.1f %.1f %.1f)">%s</text>`,
			p.LabelAt.X, p.LabelAt.Y-3, e.Emphasis.Opacity,
			p.LabelAngleDeg, p.LabelAt.X, p.LabelAt.Y,
			escapeXML(e.Type)))
		buf.WriteByte('\n')
	}
}

// writeNode emits one node circle plus its label under the circle.
func writeNode(buf *bytes.Buffer, n engine.FrameNode, fill string, showLabels bool) {
	stroke := "#ffffff"
	if n.Pinned {
		stroke = "#333333"
	}
	buf.WriteString(fmt.Sprintf(
		`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s" stroke-width="1.5" opacity="%.3f"/>`,
		n.Pos.X, n.Pos.Y, n.Radius, fill, stroke, n.Emphasis.Opacity))
	buf.WriteByte('\n')

	if showLabels {
		label := n.Label
		if label == "" {
			label = n.ID
		}
		buf.WriteString(fmt.Sprintf(
			`<text x="%.1f" y="%.1f" class="node-label" opacity="%.3f">%s</text>`,
			n.Pos.X, n.Pos.Y+n.Radius+12, n.Emphasis.Opacity, escapeXML(label)))
		buf.WriteByte('\n')
	}
}

// assignGroupColors maps group tags to palette colors by first appearance.
func assignGroupColors(f engine.Frame) map[string]string {
	colors := make(map[string]string)
	for _, n := range f.Nodes {
		if _, ok := colors[n.Group]; !ok {
			colors[n.Group] = groupPalette[len(colors)%len(groupPalette)]
		}
	}
	return colors
}

// escapeXML guards labels against markup injection.
func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}

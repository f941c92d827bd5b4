package render

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/rackplan/pkg/errors"
	"github.com/matzehuels/rackplan/pkg/layout"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// plotPadding is the margin around the panel extents, in layout units.
	plotPadding = 5.0

	// plotWidth and plotHeight set the canvas size.
	plotWidth  = 8 * vg.Inch
	plotHeight = 6 * vg.Inch
)

var (
	panelFace  = color.NRGBA{R: 0x8b, G: 0xbe, B: 0xdd, A: 0x66}
	panelEdge  = color.NRGBA{R: 0x1f, G: 0x4e, B: 0x79, A: 0x66}
	rafterGray = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	jointGray  = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
)

// =============================================================================
// Plot Rendering
// =============================================================================

// WritePlot renders the layout to the given file. The format is chosen by
// the file extension: .png, .svg, or .pdf. Parent directories are created
// as needed.
func WritePlot(ctx layout.Context, path string) error {
	if len(ctx.Panels) == 0 {
		return errors.New(errors.ErrCodeNoPanels, "Cannot render layout without panels.")
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png", ".svg", ".pdf":
	default:
		return errors.New(errors.ErrCodeRenderFailed,
			"Unsupported plot format %q: use .png, .svg, or .pdf.", ext)
	}

	p := plot.New()
	p.Title.Text = "Panel Layout with Mounts & Joints"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	// Roof coordinates grow downward from the ridge.
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Y.Tick.Marker = plot.DefaultTicks{}

	minX, minY, maxX, maxY := bounds(ctx.Panels)
	p.X.Min = minX - plotPadding
	p.X.Max = maxX + plotPadding
	p.Y.Min = minY - plotPadding
	p.Y.Max = maxY + plotPadding

	if err := addPanels(p, ctx.Panels); err != nil {
		return err
	}
	if err := addRafters(p, ctx.Rafters, p.Y.Min, p.Y.Max); err != nil {
		return err
	}
	if err := addMarkers(p, ctx.Result); err != nil {
		return err
	}
	p.Legend.Top = true

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "create plot directory %s", dir)
		}
	}
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "save plot %s", path)
	}
	return nil
}

// bounds returns the tight bounding box of all panels.
func bounds(panels []layout.Panel) (minX, minY, maxX, maxY float64) {
	lefts := make([]float64, len(panels))
	tops := make([]float64, len(panels))
	rights := make([]float64, len(panels))
	bottoms := make([]float64, len(panels))
	for i, panel := range panels {
		lefts[i] = panel.X
		tops[i] = panel.Y
		rights[i] = panel.RightEdge()
		bottoms[i] = panel.BottomEdge()
	}
	return floats.Min(lefts), floats.Min(tops), floats.Max(rights), floats.Max(bottoms)
}

func addPanels(p *plot.Plot, panels []layout.Panel) error {
	for _, panel := range panels {
		rect, err := plotter.NewPolygon(plotter.XYs{
			{X: panel.X, Y: panel.Y},
			{X: panel.RightEdge(), Y: panel.Y},
			{X: panel.RightEdge(), Y: panel.BottomEdge()},
			{X: panel.X, Y: panel.BottomEdge()},
		})
		if err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "panel rectangle")
		}
		rect.Color = panelFace
		rect.LineStyle.Color = panelEdge
		rect.LineStyle.Width = vg.Points(1)
		p.Add(rect)
	}
	return nil
}

func addRafters(p *plot.Plot, rafters []float64, yMin, yMax float64) error {
	for _, x := range rafters {
		line, err := plotter.NewLine(plotter.XYs{{X: x, Y: yMin}, {X: x, Y: yMax}})
		if err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "rafter line")
		}
		line.LineStyle.Color = rafterGray
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
		p.Add(line)
	}
	return nil
}

func addMarkers(p *plot.Plot, result layout.Result) error {
	if len(result.Mounts) > 0 {
		pts := make(plotter.XYs, len(result.Mounts))
		for i, m := range result.Mounts {
			pts[i] = plotter.XY{X: m.X, Y: m.Y}
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "mount markers")
		}
		scatter.GlyphStyle = draw.GlyphStyle{
			Color:  color.Black,
			Radius: vg.Points(2),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(scatter)
		p.Legend.Add("Mounts", scatter)
	}

	if len(result.Joints) > 0 {
		pts := make(plotter.XYs, len(result.Joints))
		for i, j := range result.Joints {
			pts[i] = plotter.XY{X: j.X, Y: j.Y}
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "joint markers")
		}
		scatter.GlyphStyle = draw.GlyphStyle{
			Color:  jointGray,
			Radius: vg.Points(3),
			Shape:  draw.BoxGlyph{},
		}
		p.Add(scatter)
		p.Legend.Add("Joints", scatter)
	}
	return nil
}

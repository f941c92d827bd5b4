package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/matzehuels/rackplan/pkg/errors"
	"github.com/matzehuels/rackplan/pkg/layout"
)

// WriteChart emits a self-contained HTML scatter chart of the layout's
// mounts and joints. It backs the HTTP server's debug endpoint.
func WriteChart(ctx layout.Context, w io.Writer) error {
	if len(ctx.Panels) == 0 {
		return errors.New(errors.ErrCodeNoPanels, "Cannot render layout without panels.")
	}

	minX, minY, maxX, maxY := bounds(ctx.Panels)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Rackplan Layout",
			Width:     "900px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Panel Layout",
			Subtitle: fmt.Sprintf("panels=%d mounts=%d joints=%d",
				len(ctx.Panels), len(ctx.Result.Mounts), len(ctx.Result.Joints)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Min: minX - plotPadding, Max: maxX + plotPadding, Name: "X",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Min: minY - plotPadding, Max: maxY + plotPadding, Name: "Y",
		}),
	)

	mounts := make([]opts.ScatterData, len(ctx.Result.Mounts))
	for i, m := range ctx.Result.Mounts {
		mounts[i] = opts.ScatterData{Value: []interface{}{m.X, m.Y}, Symbol: "circle", SymbolSize: 6}
	}
	scatter.AddSeries("mounts", mounts,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#000000"}))

	joints := make([]opts.ScatterData, len(ctx.Result.Joints))
	for i, j := range ctx.Result.Joints {
		joints[i] = opts.ScatterData{Value: []interface{}{j.X, j.Y}, Symbol: "rect", SymbolSize: 9}
	}
	scatter.AddSeries("joints", joints,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#555555"}))

	if err := scatter.Render(w); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "render chart")
	}
	return nil
}

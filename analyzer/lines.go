package analyzer

import (
	"image/color"

	"github.com/aditya25058/MT25058-PA01/dataset"
	"github.com/aditya25058/MT25058-PA01/stats"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// seriesT is one labelled subset of the scaling dataset.
type seriesT struct {
	Label   string
	Records []dataset.ScalingRecord
	Shape   draw.GlyphDrawer
	Color   color.Color
}

func scalingSeries(processes, threads []dataset.ScalingRecord) []seriesT {
	return []seriesT{
		{Label: "Processes", Records: processes, Shape: draw.CircleGlyph{}, Color: plotutil.Color(0)},
		{Label: "Threads", Records: threads, Shape: draw.SquareGlyph{}, Color: plotutil.Color(1)},
	}
}

// panelT describes one line chart of a scaling figure.
type panelT struct {
	Title  string
	YLabel string
	Metric stats.Metric
}

const countLabel = "Number of Processes/Threads"

// linePanel plots metric against Count, one line per series. Points whose
// metric is missing are left out of their line.
func linePanel(pnl panelT, series []seriesT) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = pnl.Title
	p.X.Label.Text = countLabel
	p.Y.Label.Text = pnl.YLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = 1 * vg.Millimeter

	grid := plotter.NewGrid()
	grid.Vertical.Color = lightGray
	grid.Horizontal.Color = lightGray
	p.Add(grid)

	for _, s := range series {
		points, missing := stats.Series(s.Records, pnl.Metric)
		if missing > 0 {
			log.WithFields(log.Fields{
				"series":  s.Label,
				"metric":  pnl.Metric,
				"missing": missing,
			}).Debugln("leaving out points with missing values")
		}
		if len(points) == 0 {
			continue
		}

		xys := make(plotter.XYs, len(points))
		for i, pt := range points {
			xys[i].X = pt.Count
			xys[i].Y = pt.Value
		}

		line, scatter, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, errors.Wrapf(err, "%v: %v", pnl.Title, s.Label)
		}
		line.Color = s.Color
		line.Width = vg.Points(2)
		scatter.Shape = s.Shape
		scatter.Color = s.Color
		scatter.Radius = vg.Points(3.5)

		p.Add(line, scatter)
		p.Legend.Add(s.Label, line, scatter)
	}

	return p, nil
}

package analyzer

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// barsT draws one bar per category. Unlike plotter.BarChart, Width and
// Offset are given in category units, so a group of bars always takes the
// same fraction of a category whatever the size of the canvas.
type barsT struct {
	Values plotter.Values

	// Width of a bar, 1 is a whole category.
	Width float64

	// Offset of the bar center from the category position.
	Offset float64

	Color color.Color
	draw.LineStyle
}

func newBars(vs plotter.Valuer, width, offset float64, c color.Color) (*barsT, error) {
	values, err := plotter.CopyValues(vs)
	if err != nil {
		return nil, err
	}
	return &barsT{
		Values: values,
		Width:  width,
		Offset: offset,
		Color:  c,
	}, nil
}

// Plot implements the plot.Plotter interface.
func (b *barsT) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for i, v := range b.Values {
		center := float64(i) + b.Offset
		xmin := trX(center - b.Width/2)
		xmax := trX(center + b.Width/2)
		ymin := trY(0)
		ymax := trY(v)

		pts := []vg.Point{
			{X: xmin, Y: ymin},
			{X: xmin, Y: ymax},
			{X: xmax, Y: ymax},
			{X: xmax, Y: ymin},
		}
		c.FillPolygon(b.Color, c.ClipPolygonXY(pts))

		if b.LineStyle.Width > 0 {
			outline := c.ClipLinesXY(append(pts, pts[0]))
			c.StrokeLines(b.LineStyle, outline...)
		}
	}
}

// DataRange implements the plot.DataRanger interface. The X range spans
// half a category past the first and last one so that the outer bars are
// not cut off, the Y range always includes zero.
func (b *barsT) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin = -0.5
	xmax = float64(len(b.Values)) - 0.5
	for _, v := range b.Values {
		ymin = math.Min(ymin, v)
		ymax = math.Max(ymax, v)
	}
	return xmin, xmax, ymin, ymax
}

// Thumbnail implements the plot.Thumbnailer interface.
func (b *barsT) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.Color, c.ClipPolygonY(pts))
}

// withAlpha returns c with its opacity replaced by a in [0, 1].
func withAlpha(c color.Color, a float64) color.Color {
	r, g, bl, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(bl >> 8),
		A: uint8(math.Round(a * 255)),
	}
}

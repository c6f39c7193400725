package analyzer

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/pkg/errors"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// margin kept around the content when cropping, in inches
const cropMargin = 0.1

// figureT is a grid of panels sharing one canvas and an overall title.
type figureT struct {
	Title  string
	Width  vg.Length
	Height vg.Length

	// Panels is row-major.
	Panels [][]*plot.Plot
}

func (f *figureT) titleStyle() draw.TextStyle {
	sty := plot.New().Title.TextStyle
	sty.Font.Size = vg.Points(16)
	sty.Font.Weight = xfont.WeightBold
	return sty
}

// render draws the figure at the given resolution and returns the raster
// cropped to its content.
func (f *figureT) render(dpi int) image.Image {
	img := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(dpi))
	dc := draw.New(img)

	padTop := vg.Points(6)
	if f.Title != "" {
		sty := f.titleStyle()
		descent := sty.FontExtents().Descent
		dc.FillText(sty, vg.Point{X: dc.Center().X, Y: dc.Max.Y - padTop + descent}, f.Title)
		padTop += sty.Rectangle(f.Title).Size().Y + vg.Points(12)
	}

	rows := len(f.Panels)
	cols := 0
	for _, r := range f.Panels {
		if len(r) > cols {
			cols = len(r)
		}
	}

	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Points(24),
		PadY:      vg.Points(24),
		PadTop:    padTop,
		PadBottom: vg.Points(6),
		PadLeft:   vg.Points(6),
		PadRight:  vg.Points(12),
	}

	if rows > 0 && cols > 0 {
		canvases := plot.Align(f.Panels, tiles, dc)
		for j := range f.Panels {
			for i, p := range f.Panels[j] {
				if p != nil {
					p.Draw(canvases[j][i])
				}
			}
		}
	}

	return cropToContent(img.Image(), int(cropMargin*float64(dpi)+0.5))
}

// save renders the figure and writes it as PNG to filename, replacing any
// existing file.
func (f *figureT) save(filename string, dpi int) error {
	img := f.render(dpi)

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "cannot create image file")
	}
	defer file.Close()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return errors.Wrapf(err, "cannot encode %v", filename)
	}
	data, err := withDensity(buf.Bytes(), dpi)
	if err != nil {
		return errors.Wrapf(err, "cannot encode %v", filename)
	}

	w := bufio.NewWriter(file)
	if _, err := w.Write(data); err != nil {
		return errors.Wrapf(err, "cannot write %v", filename)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "cannot write %v", filename)
	}

	return file.Close()
}

// PNG stores the pixel density per metre.
const inchesPerMetre = 1 / 0.0254

// ihdrEnd is the offset right after the signature and the IHDR chunk, which
// the encoder always writes first.
const ihdrEnd = 8 + 4 + 4 + 13 + 4

// withDensity inserts a pHYs chunk carrying dpi into an encoded PNG.
func withDensity(data []byte, dpi int) ([]byte, error) {
	if len(data) < ihdrEnd || string(data[12:16]) != "IHDR" {
		return nil, errors.New("not a PNG stream")
	}

	ppm := uint32(math.Round(float64(dpi) * inchesPerMetre))

	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:], 9)
	copy(chunk[4:], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:], ppm)
	binary.BigEndian.PutUint32(chunk[12:], ppm)
	// unit is the metre
	chunk[16] = 1
	binary.BigEndian.PutUint32(chunk[17:], crc32.ChecksumIEEE(chunk[4:17]))

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:ihdrEnd]...)
	out = append(out, chunk...)
	out = append(out, data[ihdrEnd:]...)
	return out, nil
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// cropToContent returns the smallest part of img that holds every
// non-white pixel, grown by margin pixels on each side.
func cropToContent(img image.Image, margin int) image.Image {
	bounds := img.Bounds()
	content := image.Rectangle{Min: bounds.Max, Max: bounds.Min}

	isBackground := func(x, y int) bool {
		r, g, b, _ := img.At(x, y).RGBA()
		return r == 0xffff && g == 0xffff && b == 0xffff
	}
	if rgba, ok := img.(*image.RGBA); ok {
		isBackground = func(x, y int) bool {
			i := rgba.PixOffset(x, y)
			return rgba.Pix[i] == 0xff && rgba.Pix[i+1] == 0xff && rgba.Pix[i+2] == 0xff
		}
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if isBackground(x, y) {
				continue
			}
			if x < content.Min.X {
				content.Min.X = x
			}
			if y < content.Min.Y {
				content.Min.Y = y
			}
			if x >= content.Max.X {
				content.Max.X = x + 1
			}
			if y >= content.Max.Y {
				content.Max.Y = y + 1
			}
		}
	}

	if content.Empty() {
		return img
	}

	content = image.Rect(
		content.Min.X-margin, content.Min.Y-margin,
		content.Max.X+margin, content.Max.Y+margin,
	).Intersect(bounds)

	sub, ok := img.(subImager)
	if !ok {
		return img
	}
	return sub.SubImage(content)
}

// lightGray is used for grid lines.
var lightGray = color.Gray{Y: 210}

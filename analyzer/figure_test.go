package analyzer

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aditya25058/MT25058-PA01/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
)

func whiteImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

func TestCropToContent(t *testing.T) {
	img := whiteImage(20, 20)
	img.Set(10, 5, color.Black)
	img.Set(12, 7, color.Black)

	cropped := cropToContent(img, 2)
	assert.Equal(t, image.Rect(8, 3, 15, 10), cropped.Bounds())
}

func TestCropToContentClampsToBounds(t *testing.T) {
	img := whiteImage(10, 10)
	img.Set(0, 9, color.Black)

	cropped := cropToContent(img, 3)
	assert.Equal(t, image.Rect(0, 6, 4, 10), cropped.Bounds())
}

func TestCropToContentBlank(t *testing.T) {
	img := whiteImage(10, 10)
	assert.Equal(t, img.Bounds(), cropToContent(img, 1).Bounds())
}

func TestBarsDataRange(t *testing.T) {
	b, err := newBars(plotter.Values{3, -1, 7}, barWidth, 0, color.Black)
	require.NoError(t, err)

	xmin, xmax, ymin, ymax := b.DataRange()
	assert.Equal(t, -0.5, xmin)
	assert.Equal(t, 2.5, xmax)
	assert.Equal(t, -1.0, ymin)
	assert.Equal(t, 7.0, ymax)
}

func TestBarsDataRangeIncludesZero(t *testing.T) {
	b, err := newBars(plotter.Values{4, 5}, barWidth, 0, color.Black)
	require.NoError(t, err)

	_, _, ymin, _ := b.DataRange()
	assert.Equal(t, 0.0, ymin)
}

func TestWithAlpha(t *testing.T) {
	c := withAlpha(color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}, 0.8)
	assert.Equal(t, color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 204}, c)
}

func TestComboFigureKeepsWorkerWithoutProgramB(t *testing.T) {
	records := []dataset.ComboRecord{
		{Program: dataset.ProgramA, Worker: "2", CPUPercent: dataset.Of(80)},
		{Program: dataset.ProgramB, Worker: "2", CPUPercent: dataset.Of(150)},
		{Program: dataset.ProgramA, Worker: "4", CPUPercent: dataset.Of(160)},
	}
	table := dataset.NewComboTable(records)

	fig, err := comboFigure(table)
	require.NoError(t, err)
	require.Len(t, fig.Panels, 2)

	cpu := fig.Panels[0][0]
	assert.Equal(t, "CPU Usage by Worker Type", cpu.Title.Text)
	assert.Equal(t, -0.5, cpu.X.Min)
	assert.Equal(t, 1.5, cpu.X.Max, "worker 4 must stay on the axis")
	assert.InDelta(t, 160*1.05, cpu.Y.Max, 1e-9)

	assert.Equal(t, []float64{80, 160}, table.Series(dataset.ProgramA, dataset.ComboCPU))
	assert.Equal(t, []float64{150, 0}, table.Series(dataset.ProgramB, dataset.ComboCPU))
}

func TestComboFigureEmptyTable(t *testing.T) {
	fig, err := comboFigure(dataset.NewComboTable(nil))
	require.NoError(t, err)

	img := fig.render(testDPI)
	assert.False(t, img.Bounds().Empty())
}

func TestLinePanelSkipsEmptySeries(t *testing.T) {
	processes := []dataset.ScalingRecord{
		{Type: dataset.Process, Count: 1, CPUPercent: dataset.Of(100)},
		{Type: dataset.Process, Count: 2, CPUPercent: dataset.Missing()},
		{Type: dataset.Process, Count: 4, CPUPercent: dataset.Of(380)},
	}

	p, err := linePanel(scalingPanels[0][0], scalingSeries(processes, nil))
	require.NoError(t, err)
	assert.Equal(t, countLabel, p.X.Label.Text)
	assert.Equal(t, 1.0, p.X.Min)
	assert.Equal(t, 4.0, p.X.Max)
	assert.Equal(t, 380.0, p.Y.Max)
}

func TestFigureTitleIsDrawn(t *testing.T) {
	fig := &figureT{Title: strings.Repeat("W", 8), Width: 200, Height: 100}
	img := fig.render(72)

	// a title alone must leave something after cropping
	assert.Less(t, img.Bounds().Dx(), 200)
	assert.Greater(t, img.Bounds().Dx(), 0)
}

func TestSaveRecordsDensity(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "title.png")
	fig := &figureT{Title: "density", Width: 200, Height: 100}
	require.NoError(t, fig.save(filename, 300))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	i := bytes.Index(data, []byte("pHYs"))
	require.Equal(t, ihdrEnd+4, i, "pHYs must follow IHDR")
	assert.Equal(t, uint32(9), binary.BigEndian.Uint32(data[i-4:]))
	assert.Equal(t, uint32(11811), binary.BigEndian.Uint32(data[i+4:]))
	assert.Equal(t, uint32(11811), binary.BigEndian.Uint32(data[i+8:]))
	assert.Equal(t, byte(1), data[i+12])
}

func TestWithDensityRejectsGarbage(t *testing.T) {
	_, err := withDensity([]byte("not an image"), 300)
	assert.Error(t, err)
}

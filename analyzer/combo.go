package analyzer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aditya25058/MT25058-PA01/dataset"
	"github.com/aditya25058/MT25058-PA01/stats"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	barWidth = 0.35
	barAlpha = 0.8
)

type comboPanelT struct {
	Title  string
	YLabel string
	Metric dataset.ComboMetric
}

var comboPanels = [][]comboPanelT{
	{
		{Title: "CPU Usage by Worker Type", YLabel: "CPU Usage (%)", Metric: dataset.ComboCPU},
		{Title: "Memory Usage by Worker Type", YLabel: "Memory Usage (MB)", Metric: dataset.ComboMemory},
	},
	{
		{Title: "I/O Throughput by Worker Type", YLabel: "I/O Throughput (KB/s)", Metric: dataset.ComboIO},
		{Title: "Execution Time by Worker Type", YLabel: "Execution Time (seconds)", Metric: dataset.ComboExecTime},
	},
}

var comboPrograms = []struct {
	program dataset.Program
	label   string
	offset  float64
}{
	{dataset.ProgramA, "Program A (Processes)", -barWidth / 2},
	{dataset.ProgramB, "Program B (Threads)", barWidth / 2},
}

// ComboAnalysis renders the grouped bar figure from the combination dataset
// and returns the paths it wrote. The dataset is optional: a missing input
// file is reported as a warning and skipped.
func (a *Analyzer) ComboAnalysis() ([]string, error) {
	input := a.inputPath(a.cfg.ComboInput)

	if _, err := os.Stat(input); os.IsNotExist(err) {
		fmt.Fprintf(a.out, "Warning: %v not found, skipping combination plots\n", a.cfg.ComboInput)
		log.WithField("file", input).Warnln("combination dataset not found")
		return nil, nil
	}

	records, err := dataset.ReadCombo(input)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load combination dataset")
	}
	log.WithField("file", input).WithField("rows", len(records)).Debugln("loaded combination dataset")

	table := dataset.NewComboTable(records)
	for _, prog := range comboPrograms {
		stats.PrintComboStats(prog.program, table.Records(prog.program))
	}

	fig, err := comboFigure(table)
	if err != nil {
		return nil, err
	}

	filename := filepath.Join(a.cfg.Dir, ComboFigure)
	if err := fig.save(filename, a.cfg.DPI); err != nil {
		return nil, err
	}
	fmt.Fprintf(a.out, "Saved: %v\n", ComboFigure)

	return []string{filename}, nil
}

func comboFigure(table *dataset.ComboTable) (*figureT, error) {
	palette, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", 3)
	if err != nil {
		return nil, err
	}
	colors := palette.Colors()

	workers := table.Workers()
	if len(workers) == 0 {
		log.Warnln("combination dataset has no rows")
	}

	fig := &figureT{
		Title:  "Part C: Program+Worker Combinations Analysis (MT25058)",
		Width:  14 * vg.Inch,
		Height: 10 * vg.Inch,
	}

	for _, row := range comboPanels {
		var plots []*plot.Plot
		for _, pnl := range row {
			p := plot.New()
			p.Title.Text = pnl.Title
			p.Y.Label.Text = pnl.YLabel
			p.Legend.Top = true
			p.Legend.Padding = 1 * vg.Millimeter

			grid := plotter.NewGrid()
			grid.Vertical.Color = nil
			grid.Horizontal.Color = lightGray
			p.Add(grid)

			for i, prog := range comboPrograms {
				bars, err := newBars(plotter.Values(table.Series(prog.program, pnl.Metric)), barWidth, prog.offset, withAlpha(colors[i], barAlpha))
				if err != nil {
					return nil, errors.Wrapf(err, "%v: %v", pnl.Title, prog.label)
				}
				p.Add(bars)
				p.Legend.Add(prog.label, bars)
			}

			if len(workers) > 0 {
				p.NominalX(workers...)
			}
			// headroom above the tallest bar
			if p.Y.Max > 0 {
				p.Y.Max *= 1.05
			}

			plots = append(plots, p)
		}
		fig.Panels = append(fig.Panels, plots)
	}

	return fig, nil
}

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
	"gonum.org/v1/plot/vg"
)

var scalingPanels = [][]panelT{
	{
		{Title: "CPU Usage Scaling", YLabel: "CPU Usage (%)", Metric: stats.CPUPercent},
		{Title: "Execution Time Scaling", YLabel: "Execution Time (seconds)", Metric: stats.RealTime},
	},
	{
		{Title: "Memory Usage Scaling", YLabel: "Memory Usage (MB)", Metric: stats.MemoryMB},
		{Title: "Total CPU Time Scaling", YLabel: "Total CPU Time (seconds)", Metric: stats.TotalCPU},
	},
}

var efficiencyPanels = [][]panelT{
	{
		{Title: "CPU Efficiency Comparison", YLabel: "CPU Efficiency (% per unit)", Metric: stats.CPUEfficiency},
		{Title: "Time Efficiency Comparison", YLabel: "Time per unit (seconds)", Metric: stats.TimeEfficiency},
	},
}

// ScalingAnalysis renders the scaling and efficiency figures from the
// scaling dataset and returns the paths it wrote. A missing input file is
// reported and skipped, it is not an error.
func (a *Analyzer) ScalingAnalysis() ([]string, error) {
	input := a.inputPath(a.cfg.ScalingInput)

	if _, err := os.Stat(input); os.IsNotExist(err) {
		fmt.Fprintf(a.out, "Error: %v not found\n", a.cfg.ScalingInput)
		log.WithField("file", input).Errorln("scaling dataset not found, skipping scaling plots")
		return nil, nil
	}

	records, err := dataset.ReadScaling(input)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load scaling dataset")
	}
	log.WithField("file", input).WithField("rows", len(records)).Debugln("loaded scaling dataset")

	processes, threads := dataset.Partition(records)
	if len(processes) == 0 && len(threads) == 0 {
		log.WithField("file", input).Warnln("scaling dataset has no Process or Thread rows")
	}
	stats.PrintScalingStats(dataset.Process, processes)
	stats.PrintScalingStats(dataset.Thread, threads)

	series := scalingSeries(processes, threads)

	figures := []struct {
		name   string
		title  string
		height vg.Length
		panels [][]panelT
	}{
		{ScalingFigure, "Process and Thread Scaling Analysis (MT25058)", 10 * vg.Inch, scalingPanels},
		{EfficiencyFigure, "Process vs Thread Efficiency Metrics", 5 * vg.Inch, efficiencyPanels},
	}

	var written []string
	for _, f := range figures {
		fig := &figureT{
			Title:  f.title,
			Width:  14 * vg.Inch,
			Height: f.height,
		}
		for _, row := range f.panels {
			var plots []*plot.Plot
			for _, pnl := range row {
				p, err := linePanel(pnl, series)
				if err != nil {
					return written, err
				}
				plots = append(plots, p)
			}
			fig.Panels = append(fig.Panels, plots)
		}

		filename := filepath.Join(a.cfg.Dir, f.name)
		if err := fig.save(filename, a.cfg.DPI); err != nil {
			return written, err
		}
		fmt.Fprintf(a.out, "Saved: %v\n", f.name)
		written = append(written, filename)
	}

	return written, nil
}

// Package analyzer turns the experiment datasets into the report figures.
package analyzer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Fixed file names of the inputs and the generated figures.
const (
	ScalingInput = "MT25058_Part_D_CSV.csv"
	ComboInput   = "MT25058_Part_C_CSV.csv"

	ScalingFigure    = "MT25058_Part_D_scaling_analysis.png"
	EfficiencyFigure = "MT25058_Part_D_efficiency_metrics.png"
	ComboFigure      = "MT25058_Part_C_analysis.png"
)

// DefaultDPI is the resolution of the generated figures.
const DefaultDPI = 300

// Config controls where the analyzer reads and writes.
type Config struct {
	// Dir holds the input files and receives the figures.
	Dir string

	ScalingInput string
	ComboInput   string

	DPI int

	// Out receives the console status lines, os.Stdout if nil.
	Out io.Writer
}

// Analyzer runs both analyses of a Config.
type Analyzer struct {
	cfg Config
	out io.Writer
}

// New returns an Analyzer for cfg, filling in defaults for unset fields.
func New(cfg Config) *Analyzer {
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.ScalingInput == "" {
		cfg.ScalingInput = ScalingInput
	}
	if cfg.ComboInput == "" {
		cfg.ComboInput = ComboInput
	}
	if cfg.DPI <= 0 {
		cfg.DPI = DefaultDPI
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	return &Analyzer{cfg: cfg, out: out}
}

func (a *Analyzer) inputPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(a.cfg.Dir, name)
}

// Run executes the scaling analysis and then the combination analysis and
// returns every figure written. A missing input only skips its own analysis.
func (a *Analyzer) Run() ([]string, error) {
	log.WithFields(log.Fields{
		"dir": a.cfg.Dir,
		"dpi": a.cfg.DPI,
	}).Debugln("starting analysis")

	fmt.Fprintln(a.out, "Generating plots for scaling analysis...")
	written, err := a.ScalingAnalysis()
	if err != nil {
		return written, err
	}

	fmt.Fprintln(a.out, "Generating plots for combination analysis...")
	combo, err := a.ComboAnalysis()
	written = append(written, combo...)
	if err != nil {
		return written, err
	}

	fmt.Fprintf(a.out, "Done: %v figure(s) written\n", len(written))
	return written, nil
}

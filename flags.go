package main

import (
	"github.com/aditya25058/MT25058-PA01/analyzer"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// command line parameters
var dir string
var scalingInput string
var comboInput string
var dpi int
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "mt25058-plots",
	Short: "Generate the scaling and combination analysis figures",
	Long: `Reads the scaling dataset (Part D) and the program/worker combination
dataset (Part C) from the working directory and writes the PNG figures of
the report next to them. A missing input file skips its figures.`,
	Args:          cobra.NoArgs,
	PreRunE:       checkArgs,
	RunE:          runAnalysis,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&dir, "dir", ".", "Directory holding the input files and receiving the figures")
	rootCmd.Flags().StringVar(&scalingInput, "scaling", analyzer.ScalingInput, "Scaling dataset file name")
	rootCmd.Flags().StringVar(&comboInput, "combo", analyzer.ComboInput, "Combination dataset file name")
	rootCmd.Flags().IntVar(&dpi, "dpi", analyzer.DefaultDPI, "Resolution of the generated figures")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func checkArgs(cmd *cobra.Command, args []string) error {
	if dpi < 1 {
		return errors.New("dpi must be > 0")
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	return nil
}

func runAnalysis(cmd *cobra.Command, args []string) error {
	a := analyzer.New(analyzer.Config{
		Dir:          dir,
		ScalingInput: scalingInput,
		ComboInput:   comboInput,
		DPI:          dpi,
		Out:          cmd.OutOrStdout(),
	})

	_, err := a.Run()
	return err
}

package stats

import (
	"fmt"

	"github.com/aditya25058/MT25058-PA01/dataset"
	mstats "github.com/montanaflynn/stats"
	log "github.com/sirupsen/logrus"
)

// SummaryT describes one series of measurements.
type SummaryT struct {
	Mean    float64
	Stddev  float64
	Min     float64
	Max     float64
	N       int
	Missing int
}

// ComputeSummary summarizes the present values of vals. Missing values are
// only counted.
func ComputeSummary(vals []dataset.Value) SummaryT {
	var s SummaryT
	var data []float64
	for _, v := range vals {
		if !v.Valid {
			s.Missing++
			continue
		}
		data = append(data, v.Float)
	}

	s.N = len(data)
	if s.N == 0 {
		return s
	}

	var err error
	s.Mean, err = mstats.Mean(data)
	if err != nil {
		log.WithError(err).Errorln("Error while computing mean")
	}
	s.Stddev, err = mstats.StandardDeviation(data)
	if err != nil {
		log.WithError(err).Errorln("Error while computing stddev")
	}
	s.Min, err = mstats.Min(data)
	if err != nil {
		log.WithError(err).Errorln("Error while computing min")
	}
	s.Max, err = mstats.Max(data)
	if err != nil {
		log.WithError(err).Errorln("Error while computing max")
	}

	return s
}

func (s SummaryT) String() string {
	if s.N == 0 {
		return fmt.Sprintf("no data \t %3d missing", s.Missing)
	}
	return fmt.Sprintf("%9.3f mean \t %9.3f std. dev. \t %9.3f min \t %9.3f max \t %3d values \t %3d missing",
		s.Mean, s.Stddev, s.Min, s.Max, s.N, s.Missing)
}

// PrintStats logs the summary of one series.
func PrintStats(series string, metric string, s SummaryT) {
	log.WithFields(log.Fields{
		"series": series,
		"metric": metric,
	}).Infoln(s)
}

// PrintScalingStats logs a summary of every scaling metric for one subset.
func PrintScalingStats(kind dataset.Kind, records []dataset.ScalingRecord) {
	for _, m := range ScalingMetrics {
		PrintStats(string(kind), m.String(), ComputeSummary(Values(records, m)))
	}
}

// PrintComboStats logs a summary of every combination metric for one program.
func PrintComboStats(program dataset.Program, records []dataset.ComboRecord) {
	for _, m := range dataset.ComboMetrics {
		vals := make([]dataset.Value, len(records))
		for i, r := range records {
			vals[i] = m.Of(r)
		}
		PrintStats("Program "+string(program), m.String(), ComputeSummary(vals))
	}
}

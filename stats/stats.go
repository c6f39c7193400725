package stats

import (
	"github.com/aditya25058/MT25058-PA01/dataset"
)

// Metric selects a raw or derived column of the scaling dataset.
type Metric int

const (
	CPUPercent Metric = iota
	MemoryMB
	RealTime
	TotalCPU
	CPUEfficiency
	TimeEfficiency
)

// ScalingMetrics lists every metric that is plotted for the scaling dataset.
var ScalingMetrics = []Metric{CPUPercent, RealTime, MemoryMB, TotalCPU, CPUEfficiency, TimeEfficiency}

func (m Metric) String() string {
	switch m {
	case CPUPercent:
		return "CPU_Percent"
	case MemoryMB:
		return "Memory_MB"
	case RealTime:
		return "Real_Time_s"
	case TotalCPU:
		return "Total_CPU"
	case CPUEfficiency:
		return "CPU_Efficiency"
	case TimeEfficiency:
		return "Time_Efficiency"
	}
	return "unknown"
}

// Of returns the metric for r. Derived metrics are missing whenever one of
// their inputs is.
func (m Metric) Of(r dataset.ScalingRecord) dataset.Value {
	switch m {
	case CPUPercent:
		return r.CPUPercent
	case MemoryMB:
		return r.MemoryMB
	case RealTime:
		return r.RealTime
	case TotalCPU:
		return GetTotalCPU(r)
	case CPUEfficiency:
		return GetCPUEfficiency(r)
	case TimeEfficiency:
		return GetTimeEfficiency(r)
	}
	return dataset.Missing()
}

// GetTotalCPU returns user plus system CPU time.
func GetTotalCPU(r dataset.ScalingRecord) dataset.Value {
	return r.UserCPU.Add(r.SysCPU)
}

// GetCPUEfficiency returns CPU percent per process or thread.
func GetCPUEfficiency(r dataset.ScalingRecord) dataset.Value {
	return r.CPUPercent.Div(float64(r.Count))
}

// GetTimeEfficiency returns wall clock seconds per process or thread.
func GetTimeEfficiency(r dataset.ScalingRecord) dataset.Value {
	return r.RealTime.Div(float64(r.Count))
}

// Point is one (Count, metric) pair of a series.
type Point struct {
	Count float64
	Value float64
}

// Series returns the metric against Count for records, skipping rows where
// the metric is missing. The second return value is the number of skipped
// rows. records are expected to be sorted by Count already.
func Series(records []dataset.ScalingRecord, m Metric) ([]Point, int) {
	ret := make([]Point, 0, len(records))
	missing := 0
	for _, r := range records {
		v := m.Of(r)
		if !v.Valid {
			missing++
			continue
		}
		ret = append(ret, Point{Count: float64(r.Count), Value: v.Float})
	}
	return ret, missing
}

// Values returns the metric for every record, missing ones included.
func Values(records []dataset.ScalingRecord, m Metric) []dataset.Value {
	ret := make([]dataset.Value, len(records))
	for i, r := range records {
		ret[i] = m.Of(r)
	}
	return ret
}

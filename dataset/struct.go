package dataset

// Kind is the concurrency model of a scaling measurement.
type Kind string

const (
	Process Kind = "Process"
	Thread  Kind = "Thread"
)

// Program identifies the implementation variant of a combination measurement.
type Program string

const (
	// ProgramA is the process based implementation.
	ProgramA Program = "A"
	// ProgramB is the thread based implementation.
	ProgramB Program = "B"
)

// ScalingRecord is one row of the process/thread scaling dataset.
type ScalingRecord struct {
	Type  Kind
	Count int

	CPUPercent Value
	MemoryMB   Value

	// wall clock time in seconds
	RealTime Value

	UserCPU Value
	SysCPU  Value
}

// ComboRecord is one row of the program/worker combination dataset.
type ComboRecord struct {
	Program Program
	Worker  string

	CPUPercent Value
	MemoryMB   Value
	IOKBs      Value
	ExecTime   Value
}

// ComboMetric selects one measurement column of a ComboRecord.
type ComboMetric int

const (
	ComboCPU ComboMetric = iota
	ComboMemory
	ComboIO
	ComboExecTime
)

// ComboMetrics lists all combination metrics in panel order.
var ComboMetrics = []ComboMetric{ComboCPU, ComboMemory, ComboIO, ComboExecTime}

// Of returns the metric's value in r.
func (m ComboMetric) Of(r ComboRecord) Value {
	switch m {
	case ComboCPU:
		return r.CPUPercent
	case ComboMemory:
		return r.MemoryMB
	case ComboIO:
		return r.IOKBs
	case ComboExecTime:
		return r.ExecTime
	}
	return Missing()
}

func (m ComboMetric) String() string {
	switch m {
	case ComboCPU:
		return "CPU_Percent"
	case ComboMemory:
		return "Memory_MB"
	case ComboIO:
		return "IO_KB_s"
	case ComboExecTime:
		return "Exec_Time_s"
	}
	return "unknown"
}

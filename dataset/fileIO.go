package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// column names of the scaling dataset
const (
	colType       = "Type"
	colCount      = "Count"
	colCPUPercent = "CPU_Percent"
	colMemoryMB   = "Memory_MB"
	colRealTime   = "Real_Time_s"
	colUserCPU    = "User_CPU_s"
	colSysCPU     = "Sys_CPU_s"
)

// column names of the combination dataset
const (
	colProgram  = "Program"
	colWorker   = "Worker"
	colIOKBs    = "IO_KB_s"
	colExecTime = "Exec_Time_s"
)

var scalingColumns = []string{colType, colCount, colCPUPercent, colMemoryMB, colRealTime, colUserCPU, colSysCPU}
var comboColumns = []string{colProgram, colWorker, colCPUPercent, colMemoryMB, colIOKBs, colExecTime}

type tableT struct {
	name    string
	columns map[string]int
	rows    [][]string
}

func readTable(name string, r io.Reader, required []string) (*tableT, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "%v: cannot parse csv", name)
	}
	if len(records) == 0 {
		return nil, errors.Errorf("%v: missing header", name)
	}

	t := &tableT{
		name:    name,
		columns: make(map[string]int, len(records[0])),
		rows:    records[1:],
	}
	for i, c := range records[0] {
		c = strings.TrimSpace(strings.TrimPrefix(c, "\ufeff"))
		if _, exists := t.columns[c]; !exists {
			t.columns[c] = i
		}
	}

	for _, c := range required {
		if _, exists := t.columns[c]; !exists {
			return nil, errors.Errorf("%v: missing column %v", name, c)
		}
	}

	return t, nil
}

// cell returns the trimmed content of column c in row, "" for short rows.
func (t *tableT) cell(row []string, c string) string {
	i := t.columns[c]
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ReadScaling reads the scaling dataset from filename.
func ReadScaling(filename string) ([]ScalingRecord, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseScaling(filename, file)
}

// ParseScaling parses a scaling dataset. The measurement columns are parsed
// leniently, Count and Real_Time_s are not: a bad cell in either fails the
// whole load.
func ParseScaling(name string, r io.Reader) ([]ScalingRecord, error) {
	t, err := readTable(name, r, scalingColumns)
	if err != nil {
		return nil, err
	}

	records := make([]ScalingRecord, 0, len(t.rows))
	for i, row := range t.rows {
		if isBlank(row) {
			continue
		}
		// header is row 1
		line := i + 2

		var rec ScalingRecord
		rec.Type = Kind(t.cell(row, colType))

		count := t.cell(row, colCount)
		rec.Count, err = strconv.Atoi(count)
		if err != nil {
			return nil, errors.Wrapf(err, "%v: row %v: %v %q", name, line, colCount, count)
		}
		if rec.Count <= 0 {
			return nil, errors.Errorf("%v: row %v: %v must be positive, got %v", name, line, colCount, rec.Count)
		}

		if rt := t.cell(row, colRealTime); !IsNA(rt) {
			sec, err := ParseSeconds(rt)
			if err != nil {
				return nil, errors.Wrapf(err, "%v: row %v: %v", name, line, colRealTime)
			}
			rec.RealTime = Of(sec)
		} else {
			log.WithField("file", name).WithField("row", line).WithField("value", rt).Debugln("Real_Time_s not available")
		}

		rec.CPUPercent = parseCell(t, row, line, colCPUPercent)
		rec.MemoryMB = parseCell(t, row, line, colMemoryMB)
		rec.UserCPU = parseCell(t, row, line, colUserCPU)
		rec.SysCPU = parseCell(t, row, line, colSysCPU)

		log.WithFields(log.Fields{
			"file":      name,
			"row":       line,
			"type":      rec.Type,
			"count":     rec.Count,
			"cpu":       rec.CPUPercent.String(),
			"memory":    rec.MemoryMB.String(),
			"real_time": rec.RealTime.String(),
		}).Debugln("parsed scaling row")

		records = append(records, rec)
	}

	return records, nil
}

// ReadCombo reads the combination dataset from filename.
func ReadCombo(filename string) ([]ComboRecord, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseCombo(filename, file)
}

// ParseCombo parses a combination dataset. All measurement columns are
// parsed leniently.
func ParseCombo(name string, r io.Reader) ([]ComboRecord, error) {
	t, err := readTable(name, r, comboColumns)
	if err != nil {
		return nil, err
	}

	records := make([]ComboRecord, 0, len(t.rows))
	for i, row := range t.rows {
		if isBlank(row) {
			continue
		}
		line := i + 2

		var rec ComboRecord
		rec.Program = Program(t.cell(row, colProgram))
		rec.Worker = t.cell(row, colWorker)
		rec.CPUPercent = parseCell(t, row, line, colCPUPercent)
		rec.MemoryMB = parseCell(t, row, line, colMemoryMB)
		rec.IOKBs = parseCell(t, row, line, colIOKBs)
		rec.ExecTime = parseCell(t, row, line, colExecTime)

		records = append(records, rec)
	}

	return records, nil
}

func parseCell(t *tableT, row []string, line int, c string) Value {
	raw := t.cell(row, c)
	v := ParseValue(raw)
	if !v.Valid {
		log.WithFields(log.Fields{
			"file":   t.name,
			"row":    line,
			"column": c,
			"value":  raw,
		}).Debugln("treating cell as missing")
	}
	return v
}

package dataset

import (
	"math"
	"sort"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// Used as a key for maps
type comboKey struct {
	Program Program
	Worker  string
}

// ComboTable indexes the combination dataset by program and worker.
type ComboTable struct {
	workers []string
	cells   map[comboKey]ComboRecord
}

// NewComboTable builds the lookup table. If a program/worker pair occurs more
// than once, the first row wins.
func NewComboTable(records []ComboRecord) *ComboTable {
	t := &ComboTable{
		cells: make(map[comboKey]ComboRecord, len(records)),
	}

	workers := make([]string, 0)
	seen := map[string]bool{}
	for _, r := range records {
		if _, old := seen[r.Worker]; !old {
			workers = append(workers, r.Worker)
			seen[r.Worker] = true
		}

		key := comboKey{r.Program, r.Worker}
		if _, exists := t.cells[key]; exists {
			log.WithFields(log.Fields{
				"program": r.Program,
				"worker":  r.Worker,
			}).Warnln("duplicate program/worker row, keeping the first one")
			continue
		}
		t.cells[key] = r
	}

	t.workers = SortWorkers(workers)
	return t
}

// SortWorkers orders worker labels numerically if all of them are numbers,
// lexicographically otherwise. The input slice is sorted in place.
func SortWorkers(workers []string) []string {
	numeric := true
	values := make(map[string]float64, len(workers))
	for _, w := range workers {
		f, err := strconv.ParseFloat(w, 64)
		if err != nil || math.IsNaN(f) {
			numeric = false
			break
		}
		values[w] = f
	}

	sort.SliceStable(workers, func(i, j int) bool {
		if numeric {
			return values[workers[i]] < values[workers[j]]
		}
		return workers[i] < workers[j]
	})

	return workers
}

// Workers returns the distinct worker labels in plotting order.
func (t *ComboTable) Workers() []string {
	return t.workers
}

// Get returns the record for program and worker, if any.
func (t *ComboTable) Get(program Program, worker string) (ComboRecord, bool) {
	r, exists := t.cells[comboKey{program, worker}]
	return r, exists
}

// Lookup returns the metric for program and worker, 0 if the combination
// was not measured or the cell is missing.
func (t *ComboTable) Lookup(program Program, worker string, m ComboMetric) float64 {
	r, exists := t.Get(program, worker)
	if !exists {
		return 0
	}
	return m.Of(r).Or(0)
}

// Series returns the metric of program for every worker, in Workers order.
func (t *ComboTable) Series(program Program, m ComboMetric) []float64 {
	ret := make([]float64, len(t.workers))
	for i, w := range t.workers {
		ret[i] = t.Lookup(program, w, m)
	}
	return ret
}

// Records returns the records of program in Workers order.
func (t *ComboTable) Records(program Program) []ComboRecord {
	ret := make([]ComboRecord, 0, len(t.workers))
	for _, w := range t.workers {
		if r, exists := t.Get(program, w); exists {
			ret = append(ret, r)
		}
	}
	return ret
}

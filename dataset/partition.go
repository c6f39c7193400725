package dataset

import (
	"sort"

	log "github.com/sirupsen/logrus"
)

// ByType returns the records of the given kind sorted by Count. The sort is
// stable, so rows sharing a Count keep their file order.
func ByType(records []ScalingRecord, kind Kind) []ScalingRecord {
	ret := make([]ScalingRecord, 0)
	for _, r := range records {
		if r.Type == kind {
			ret = append(ret, r)
		}
	}

	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Count < ret[j].Count
	})

	for i := 1; i < len(ret); i++ {
		if ret[i].Count == ret[i-1].Count {
			log.WithFields(log.Fields{
				"type":  kind,
				"count": ret[i].Count,
			}).Warnln("duplicate Count in scaling dataset")
		}
	}

	return ret
}

// Partition splits the scaling dataset into its Process and Thread subsets,
// each sorted by Count. Rows of any other type are dropped.
func Partition(records []ScalingRecord) (processes []ScalingRecord, threads []ScalingRecord) {
	processes = ByType(records, Process)
	threads = ByType(records, Thread)

	if other := len(records) - len(processes) - len(threads); other > 0 {
		log.WithField("rows", other).Debugln("ignoring rows that are neither Process nor Thread")
	}

	return processes, threads
}

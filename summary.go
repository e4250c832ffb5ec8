package pagecollect

import "time"

// Summarize aggregates collected entries into a RunSummary stamped with the
// given time. Pure: it counts outcomes and copies the entry list reference,
// it does not persist anything.
func Summarize(entries []CollectedEntry, at time.Time) *RunSummary {
	s := &RunSummary{
		TotalPages:     len(entries),
		CollectionTime: at,
		Results:        entries,
	}
	for _, e := range entries {
		if e.Status == StatusSuccess {
			s.SuccessCount++
		} else {
			s.ErrorCount++
		}
	}
	return s
}

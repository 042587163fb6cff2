package sim

import "sort"

// ItemRecord is the output row of one finished item. All values are whole
// simulated seconds; End-Start == SideDish+Transport+Rice == Total.
type ItemRecord struct {
	Index     int   `json:"index"`
	SideDish  int64 `json:"side_dish_s"`
	Transport int64 `json:"transport_s"`
	Rice      int64 `json:"rice_s"`
	Total     int64 `json:"total_s"`
	Start     int64 `json:"start_s"`
	End       int64 `json:"end_s"`
}

// ResultTable holds the records of a run in completion order.
type ResultTable struct {
	records []ItemRecord
}

func (t *ResultTable) append(r ItemRecord) {
	t.records = append(t.records, r)
}

// Len returns the number of records.
func (t *ResultTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Records returns a copy of the records in completion order.
func (t *ResultTable) Records() []ItemRecord {
	if t == nil {
		return nil
	}
	out := make([]ItemRecord, len(t.records))
	copy(out, t.records)
	return out
}

// ByIndex returns a copy of the records sorted by item index.
func (t *ResultTable) ByIndex() []ItemRecord {
	out := t.Records()
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// ByEnd returns a copy of the records sorted by end time, ties by index.
func (t *ResultTable) ByEnd() []ItemRecord {
	out := t.Records()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].End != out[j].End {
			return out[i].End < out[j].End
		}
		return out[i].Index < out[j].Index
	})
	return out
}

// Makespan returns the largest End in the table, 0 for an empty table.
func (t *ResultTable) Makespan() int64 {
	var m int64
	for _, r := range t.Records() {
		m = max(m, r.End)
	}
	return m
}

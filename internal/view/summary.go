package view

import "github.com/gradekeep/gradekeep/internal/record"

// Summary aggregates marks across a snapshot. Highest and Lowest carry
// the name of the first record reaching that mark in store order.
type Summary struct {
	Count       int
	Average     float64
	Highest     float32
	HighestName string
	Lowest      float32
	LowestName  string
}

// Summarize computes summary statistics over records. The second
// return is false when there are no records.
func Summarize(records []record.Record) (Summary, bool) {
	if len(records) == 0 {
		return Summary{}, false
	}

	s := Summary{
		Count:       len(records),
		Highest:     records[0].Mark,
		HighestName: records[0].Name,
		Lowest:      records[0].Mark,
		LowestName:  records[0].Name,
	}

	var total float64
	for _, r := range records {
		total += float64(r.Mark)
		if r.Mark > s.Highest {
			s.Highest = r.Mark
			s.HighestName = r.Name
		}
		if r.Mark < s.Lowest {
			s.Lowest = r.Mark
			s.LowestName = r.Name
		}
	}
	s.Average = total / float64(len(records))
	return s, true
}

package entity

import "sort"

// SlotCapacity maps an aircraft ICAO code to a movement count for one slot.
type SlotCapacity map[string]int

// BodyCounts is a capacity figure split by body type. Total is always
// Narrow + Wide.
type BodyCounts struct {
	Narrow int `json:"narrow"`
	Wide   int `json:"wide"`
	Total  int `json:"total"`
}

// Add increments the counter for one body type by n.
func (b *BodyCounts) Add(body BodyType, n int) {
	if body == BodyWide {
		b.Wide += n
	} else {
		b.Narrow += n
	}
	b.Total += n
}

// Minus returns the element-wise difference b - o.
func (b BodyCounts) Minus(o BodyCounts) BodyCounts {
	return BodyCounts{
		Narrow: b.Narrow - o.Narrow,
		Wide:   b.Wide - o.Wide,
		Total:  b.Total - o.Total,
	}
}

// Template is the per-day capacity map derived from configuration alone.
// It carries best-case and adjacency-restricted worst-case counts per slot
// and aircraft code, and is independent of any calendar date.
type Template struct {
	Slots      []TimeSlot
	BestCase   map[string]SlotCapacity
	WorstCase  map[string]SlotCapacity
	BodyByCode map[string]BodyType
}

// DailyTotals sums the best-case counts across all slots, split by body type.
func (t *Template) DailyTotals() BodyCounts {
	var total BodyCounts
	for _, slot := range t.Slots {
		for code, n := range t.BestCase[slot.Name] {
			total.Add(t.BodyByCode[code], n)
		}
	}
	return total
}

// CloneBestCase deep-copies the best-case maps into a scratch structure a
// single date's overlay may mutate.
func (t *Template) CloneBestCase() map[string]SlotCapacity {
	out := make(map[string]SlotCapacity, len(t.BestCase))
	for name, caps := range t.BestCase {
		cp := make(SlotCapacity, len(caps))
		for code, n := range caps {
			cp[code] = n
		}
		out[name] = cp
	}
	return out
}

// Codes returns every aircraft code present in the template, sorted. The
// overlay iterates codes in this order so runs are reproducible.
func (t *Template) Codes() []string {
	codes := make([]string, 0, len(t.BodyByCode))
	for code := range t.BodyByCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

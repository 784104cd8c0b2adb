package fleet

import "sort"

// Statistics is the sold/unsold summary.
type Statistics struct {
	TotalVehicles  int `json:"totalVehicles"`
	SoldVehicles   int `json:"soldVehicles"`
	UnsoldVehicles int `json:"unsoldVehicles"`
}

// DecadeBreakdown counts vehicles per decade label (e.g. "1990s").
type DecadeBreakdown struct {
	VehiclesByDecade map[string]int `json:"vehiclesByDecade"`
}

// BrandBreakdown counts vehicles per brand name.
type BrandBreakdown struct {
	VehiclesByBrand map[string]int `json:"vehiclesByBrand"`
}

// RecentRegistrations lists the vehicles registered in the trailing week.
type RecentRegistrations struct {
	Vehicles []Vehicle `json:"vehicles"`
	Total    int       `json:"total"`
}

// Report is the statistics screen snapshot. The zero value is what the
// screen shows when nothing could be loaded.
type Report struct {
	Summary  Statistics
	ByDecade map[string]int
	ByBrand  map[string]int
	LastWeek RecentRegistrations
}

// Bar is one row of a proportional bar chart. Ratio is Count divided by the
// largest count of the same dataset.
type Bar struct {
	Label string
	Count int
	Ratio float64
}

// DecadeBars orders decades by label.
func DecadeBars(counts map[string]int) []Bar {
	bars := newBars(counts)
	sort.Slice(bars, func(i, j int) bool { return bars[i].Label < bars[j].Label })
	return bars
}

// BrandBars orders brands by count, largest first; ties go by name.
func BrandBars(counts map[string]int) []Bar {
	bars := newBars(counts)
	sort.Slice(bars, func(i, j int) bool {
		if bars[i].Count != bars[j].Count {
			return bars[i].Count > bars[j].Count
		}
		return bars[i].Label < bars[j].Label
	})
	return bars
}

func newBars(counts map[string]int) []Bar {
	if len(counts) == 0 {
		return nil
	}
	maxCount := 0
	for _, n := range counts {
		if n > maxCount {
			maxCount = n
		}
	}
	bars := make([]Bar, 0, len(counts))
	for label, n := range counts {
		b := Bar{Label: label, Count: n}
		if maxCount > 0 {
			b.Ratio = float64(n) / float64(maxCount)
		}
		bars = append(bars, b)
	}
	return bars
}

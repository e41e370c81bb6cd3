package itinerary

import (
	"math"
	"time"

	"github.com/Dhunu/vigovia/models"
)

const dateLayout = "2006-01-02"

// DayCount computes the trip length from its date range: one day per
// calendar date, inclusive of both ends. The difference is taken as an
// absolute value, so swapped dates yield the same count; what end < start
// should mean was never pinned down and the quirk is kept as documented
// behavior. ok is false when either date is missing or unparseable.
func DayCount(startDate, endDate string) (n int, ok bool) {
	if startDate == "" || endDate == "" {
		return 0, false
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0, false
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0, false
	}
	diff := math.Abs(end.Sub(start).Hours() / 24)
	return int(math.Ceil(diff)) + 1, true
}

// RegenerateDays rebuilds the day sequence from scratch: day i+1 falls on
// anchor+i days with empty activity and transfer lists. It is a full
// replace, not a merge; whatever was attached to the old days is gone
// once the result is assigned back.
func RegenerateDays(n int, anchor string) []models.Day {
	start, err := time.Parse(dateLayout, anchor)
	days := make([]models.Day, 0, n)
	for i := 0; i < n; i++ {
		date := ""
		if err == nil {
			date = start.AddDate(0, 0, i).Format(dateLayout)
		}
		days = append(days, models.Day{
			Day:        i + 1,
			Date:       date,
			Activities: []models.Activity{},
			Transfers:  []models.Transfer{},
		})
	}
	return days
}

// TotalPrice sums every activity and transfer across all days plus every
// flight. NaN prices count as zero.
func TotalPrice(it models.Itinerary) float64 {
	var total float64
	for _, day := range it.Days {
		for _, a := range day.Activities {
			total += amount(a.Price)
		}
		for _, t := range day.Transfers {
			total += amount(t.Price)
		}
	}
	for _, f := range it.Flights {
		total += amount(f.Price)
	}
	return total
}

func amount(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return p
}

package itinerary

import (
	"math"
	"testing"

	"github.com/Dhunu/vigovia/models"
)

func TestDayCount_InclusiveRange(t *testing.T) {
	n, ok := DayCount("2025-03-01", "2025-03-05")
	if !ok {
		t.Fatal("expected a valid day count")
	}
	if n != 5 {
		t.Errorf("expected 5 days, got %d", n)
	}
}

func TestDayCount_SingleDayTrip(t *testing.T) {
	n, ok := DayCount("2025-03-01", "2025-03-01")
	if !ok || n != 1 {
		t.Errorf("expected 1 day, got %d (ok=%v)", n, ok)
	}
}

func TestDayCount_SymmetricUnderSwappedDates(t *testing.T) {
	a, okA := DayCount("2025-03-01", "2025-03-05")
	b, okB := DayCount("2025-03-05", "2025-03-01")
	if !okA || !okB {
		t.Fatal("expected both orders to produce a count")
	}
	if a != b {
		t.Errorf("swapped dates should give the same count, got %d and %d", a, b)
	}
}

func TestDayCount_MissingOrBadDates(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
	}{
		{"missing start", "", "2025-03-05"},
		{"missing end", "2025-03-01", ""},
		{"both missing", "", ""},
		{"unparseable start", "not-a-date", "2025-03-05"},
		{"unparseable end", "2025-03-01", "03/05/2025"},
	}
	for _, tc := range cases {
		if _, ok := DayCount(tc.start, tc.end); ok {
			t.Errorf("%s: expected ok=false", tc.name)
		}
	}
}

func TestRegenerateDays_Sequence(t *testing.T) {
	days := RegenerateDays(4, "2025-06-01")

	if len(days) != 4 {
		t.Fatalf("expected 4 days, got %d", len(days))
	}
	wantDates := []string{"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04"}
	for i, day := range days {
		if day.Day != i+1 {
			t.Errorf("day %d: expected index %d, got %d", i, i+1, day.Day)
		}
		if day.Date != wantDates[i] {
			t.Errorf("day %d: expected date %s, got %s", i, wantDates[i], day.Date)
		}
		if len(day.Activities) != 0 || len(day.Transfers) != 0 {
			t.Errorf("day %d: expected empty child collections", i)
		}
		if day.Activities == nil || day.Transfers == nil {
			t.Errorf("day %d: child collections must be non-nil for serialization", i)
		}
	}
}

func TestRegenerateDays_CrossesMonthBoundary(t *testing.T) {
	days := RegenerateDays(3, "2025-01-31")
	want := []string{"2025-01-31", "2025-02-01", "2025-02-02"}
	for i, day := range days {
		if day.Date != want[i] {
			t.Errorf("day %d: expected %s, got %s", i, want[i], day.Date)
		}
	}
}

func TestTotalPrice_SumsAllChildren(t *testing.T) {
	it := models.Itinerary{
		Days: []models.Day{
			{Day: 1, Activities: []models.Activity{{ID: "a1", Price: 10}}},
			{Day: 2, Activities: []models.Activity{{ID: "a2", Price: 20}},
				Transfers: []models.Transfer{{ID: "t1", Price: 5}}},
		},
		Flights: []models.Flight{{ID: "f1", Price: 100}},
	}

	if got := TotalPrice(it); got != 135 {
		t.Errorf("expected 135, got %v", got)
	}
}

func TestTotalPrice_TreatsNaNAsZero(t *testing.T) {
	it := models.Itinerary{
		Days: []models.Day{
			{Day: 1, Activities: []models.Activity{{ID: "a1", Price: math.NaN()}, {ID: "a2", Price: 30}}},
		},
	}

	if got := TotalPrice(it); got != 30 {
		t.Errorf("expected 30, got %v", got)
	}
}

func TestTotalPrice_EmptyItinerary(t *testing.T) {
	if got := TotalPrice(models.NewItinerary()); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

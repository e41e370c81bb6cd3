package models

import (
	"strconv"
	"strings"
)

// Transfer types selectable in the builder.
const (
	TransferPrivateCar    = "private-car"
	TransferSharedShuttle = "shared-shuttle"
	TransferTaxi          = "taxi"
	TransferBus           = "bus"
)

// Flight legs.
const (
	FlightDeparture = "departure"
	FlightReturn    = "return"
)

type Activity struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Time        string  `json:"time"` // "HH:MM", empty means unscheduled
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
}

type Transfer struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Time     string  `json:"time"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Duration string  `json:"duration"`
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`
}

type Flight struct {
	ID            string  `json:"id"`
	Airline       string  `json:"airline"`
	FlightNumber  string  `json:"flightNumber"`
	Departure     string  `json:"departure"`
	Arrival       string  `json:"arrival"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	Price         float64 `json:"price"`
	Type          string  `json:"type"` // departure | return
}

// Day holds one calendar day of the trip. Activities and transfers keep
// insertion order; that order is the display order everywhere downstream.
type Day struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"` // YYYY-MM-DD
	Activities []Activity `json:"activities"`
	Transfers  []Transfer `json:"transfers"`
}

// Itinerary is the root aggregate. TotalDays and TotalPrice are derived
// fields kept in sync by the builder; the JSON shape here is also the
// persisted document and the preview handoff wire format.
type Itinerary struct {
	Destination   string   `json:"destination"`
	Duration      string   `json:"duration"`
	StartDate     string   `json:"startDate"` // YYYY-MM-DD
	EndDate       string   `json:"endDate"`   // YYYY-MM-DD
	TotalDays     int      `json:"totalDays"`
	Days          []Day    `json:"days"`
	Flights       []Flight `json:"flights"`
	CustomerName  string   `json:"customerName"`
	CustomerEmail string   `json:"customerEmail"`
	CustomerPhone string   `json:"customerPhone"`
	TotalPrice    float64  `json:"totalPrice"`
}

// NewItinerary returns the empty builder state.
func NewItinerary() Itinerary {
	return Itinerary{
		TotalDays: 1,
		Days:      []Day{},
		Flights:   []Flight{},
	}
}

// Clone returns a deep copy so read paths never alias builder state.
func (it Itinerary) Clone() Itinerary {
	out := it
	out.Days = make([]Day, len(it.Days))
	for i, d := range it.Days {
		nd := d
		nd.Activities = append([]Activity{}, d.Activities...)
		nd.Transfers = append([]Transfer{}, d.Transfers...)
		out.Days[i] = nd
	}
	out.Flights = append([]Flight{}, it.Flights...)
	return out
}

func (a Activity) ChildID() string { return a.ID }
func (t Transfer) ChildID() string { return t.ID }
func (f Flight) ChildID() string   { return f.ID }

// SetField updates one named field. Unknown field names are ignored and
// numeric fields coerce bad input to their defaults instead of erroring.
func (a *Activity) SetField(field string, value any) {
	switch field {
	case "name":
		a.Name = asString(value)
	case "description":
		a.Description = asString(value)
	case "time":
		a.Time = asString(value)
	case "duration":
		a.Duration = asString(value)
	case "price":
		a.Price = asPrice(value)
	case "location":
		a.Location = asString(value)
	}
}

func (t *Transfer) SetField(field string, value any) {
	switch field {
	case "type":
		t.Type = asString(value)
	case "time":
		t.Time = asString(value)
	case "from":
		t.From = asString(value)
	case "to":
		t.To = asString(value)
	case "duration":
		t.Duration = asString(value)
	case "price":
		t.Price = asPrice(value)
	case "capacity":
		t.Capacity = asCapacity(value)
	}
}

func (f *Flight) SetField(field string, value any) {
	switch field {
	case "airline":
		f.Airline = asString(value)
	case "flightNumber":
		f.FlightNumber = asString(value)
	case "departure":
		f.Departure = asString(value)
	case "arrival":
		f.Arrival = asString(value)
	case "departureTime":
		f.DepartureTime = asString(value)
	case "arrivalTime":
		f.ArrivalTime = asString(value)
	case "price":
		f.Price = asPrice(value)
	case "type":
		f.Type = asString(value)
	}
}

// TypeLabel renders a transfer type for display: "private-car" -> "PRIVATE CAR".
func (t Transfer) TypeLabel() string {
	return strings.ToUpper(strings.ReplaceAll(t.Type, "-", " "))
}

// TypeLabel renders the flight leg heading.
func (f Flight) TypeLabel() string {
	if f.Type == FlightReturn {
		return "Return"
	}
	return "Departure"
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asPrice coerces to a non-negative amount; anything unparseable is 0.
func asPrice(v any) float64 {
	switch n := v.(type) {
	case float64:
		if n == n && n >= 0 { // NaN never equals itself
			return n
		}
	case int:
		if n >= 0 {
			return float64(n)
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil && f >= 0 {
			return f
		}
	}
	return 0
}

// asCapacity coerces to a positive seat count; anything unparseable is 1.
func asCapacity(v any) int {
	switch n := v.(type) {
	case float64:
		if c := int(n); c >= 1 {
			return c
		}
	case int:
		if n >= 1 {
			return n
		}
	case string:
		if c, err := strconv.Atoi(strings.TrimSpace(n)); err == nil && c >= 1 {
			return c
		}
	}
	return 1
}

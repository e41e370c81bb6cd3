package handoff

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Dhunu/vigovia/models"
)

func builtItinerary() models.Itinerary {
	return models.Itinerary{
		Destination:  "Singapore",
		StartDate:    "2025-06-01",
		EndDate:      "2025-06-03",
		TotalDays:    3,
		CustomerName: "Priya",
		Days: []models.Day{
			{Day: 1, Date: "2025-06-01", Activities: []models.Activity{}, Transfers: []models.Transfer{}},
			{Day: 2, Date: "2025-06-02",
				Activities: []models.Activity{{ID: "a1", Name: "City Tour & Lunch", Time: "09:00", Price: 50, Location: "Marina Bay"}},
				Transfers:  []models.Transfer{{ID: "t1", Type: models.TransferPrivateCar, From: "Hotel", To: "Marina Bay", Price: 5, Capacity: 3}}},
			{Day: 3, Date: "2025-06-03", Activities: []models.Activity{}, Transfers: []models.Transfer{}},
		},
		Flights: []models.Flight{
			{ID: "f1", Airline: "Singapore Airlines", FlightNumber: "SQ123", Departure: "New York",
				Arrival: "Singapore", DepartureTime: "2025-06-01T08:30", Price: 300, Type: models.FlightDeparture},
		},
		TotalPrice: 355,
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	want := builtItinerary()

	payload, err := Encode(want)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(payload)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip changed the document:\n got %+v\nwant %+v", got, want)
	}
}

func TestEncode_PayloadIsURLSafe(t *testing.T) {
	payload, err := Encode(builtItinerary())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for _, c := range []string{"{", "}", "\"", " ", "&"} {
		if strings.Contains(payload, c) {
			t.Errorf("payload must not contain raw %q", c)
		}
	}
}

func TestPreviewURL_Shape(t *testing.T) {
	u, err := PreviewURL("http://localhost:8080/", builtItinerary())
	if err != nil {
		t.Fatalf("PreviewURL: %v", err)
	}
	if !strings.HasPrefix(u, "http://localhost:8080/preview?data=") {
		t.Errorf("unexpected preview URL: %s", u)
	}
}

func TestDecode_RejectsGarbage(t *testing.T) {
	if _, err := Decode("not%2Fjson"); err == nil {
		t.Error("expected an error for a non-JSON payload")
	}
	if _, err := Decode("%zz"); err == nil {
		t.Error("expected an error for broken percent-encoding")
	}
}

func TestParse_RejectsEmpty(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Error("expected an error for an empty payload")
	}
}

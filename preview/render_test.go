package preview

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dhunu/vigovia/handoff"
	"github.com/Dhunu/vigovia/models"

	"github.com/julienschmidt/httprouter"
)

func testRouter() *httprouter.Router {
	rd := NewRenderer("http://localhost:8080")
	router := httprouter.New()
	router.GET("/preview", rd.Page)
	router.GET("/preview/pdf", rd.PDF)
	return router
}

func finishedItinerary() models.Itinerary {
	return models.Itinerary{
		Destination:  "Singapore",
		StartDate:    "2025-06-01",
		EndDate:      "2025-06-03",
		TotalDays:    3,
		CustomerName: "Priya",
		Days: []models.Day{
			{Day: 1, Date: "2025-06-01",
				Activities: []models.Activity{{ID: "a1", Name: "Gardens by the Bay", Time: "09:00",
					Duration: "3 hours", Price: 50, Location: "Marina Bay", Description: "Morning walk through the domes."}},
				Transfers: []models.Transfer{{ID: "t1", Type: models.TransferPrivateCar,
					From: "Hotel", To: "Marina Bay", Time: "08:30", Duration: "30 mins", Price: 5, Capacity: 3}}},
			{Day: 2, Date: "2025-06-02", Activities: []models.Activity{}, Transfers: []models.Transfer{}},
			{Day: 3, Date: "2025-06-03", Activities: []models.Activity{}, Transfers: []models.Transfer{}},
		},
		Flights: []models.Flight{
			{ID: "f1", Airline: "Singapore Airlines", FlightNumber: "SQ123", Departure: "New York",
				Arrival: "Singapore", DepartureTime: "2025-06-01T08:30", ArrivalTime: "2025-06-02T06:10",
				Price: 300, Type: models.FlightDeparture},
		},
		TotalPrice: 355,
	}
}

func getPreview(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)
	return rec
}

func TestPage_RendersContractBlocks(t *testing.T) {
	payload, err := handoff.Encode(finishedItinerary())
	if err != nil {
		t.Fatal(err)
	}
	rec := getPreview(t, "/preview?data="+payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()

	for _, want := range []string{
		"Hi, Priya",
		"Singapore Itinerary",
		"3 Days 2 Nights",
		"Trip Overview",
		"Day 1",
		"Gardens by the Bay",
		"Marina Bay",
		"Transfer: PRIVATE CAR",
		"Flight Details",
		"Departure Flight",
		"SQ123",
		"Terms and Conditions",
		"All prices are subject to availability and may change without prior notice.",
		"TOTAL",
		"$355.00",
		CompanyName,
		"page-break-inside: avoid",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("preview body is missing %q", want)
		}
	}
}

func TestPage_UnclampedNightCount(t *testing.T) {
	it := models.NewItinerary()
	it.TotalDays = 0
	payload, err := handoff.Encode(it)
	if err != nil {
		t.Fatal(err)
	}
	rec := getPreview(t, "/preview?data="+payload)
	if !strings.Contains(rec.Body.String(), "0 Days -1 Nights") {
		t.Error("night count is not clamped; a zero-day trip shows -1 nights")
	}
}

func TestPage_MissingPayloadStaysLoading(t *testing.T) {
	rec := getPreview(t, "/preview")
	if rec.Code != http.StatusOK {
		t.Fatalf("the loading page is not an error, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Loading Preview...") {
		t.Error("expected the loading page")
	}
}

func TestPage_CorruptPayloadStaysLoading(t *testing.T) {
	rec := getPreview(t, "/preview?data=%7Bnope")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Loading Preview...") {
		t.Error("expected the loading page for a corrupt payload")
	}
}

func TestPDF_ReturnsDocument(t *testing.T) {
	payload, err := handoff.Encode(finishedItinerary())
	if err != nil {
		t.Fatal(err)
	}
	rec := getPreview(t, "/preview/pdf?data="+payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
		t.Error("response does not look like a PDF document")
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "singapore-itinerary.pdf") {
		t.Errorf("unexpected disposition: %q", rec.Header().Get("Content-Disposition"))
	}
}

func TestPDF_MissingPayloadIsRejected(t *testing.T) {
	rec := getPreview(t, "/preview/pdf")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a missing payload, got %d", rec.Code)
	}
}

func TestBuildPDF_ManyDaysPaginate(t *testing.T) {
	it := finishedItinerary()
	// enough content to force several page breaks
	var days []models.Day
	for i := 0; i < 12; i++ {
		day := models.Day{Day: i + 1, Date: "2025-06-01",
			Activities: []models.Activity{
				{ID: "x", Name: "Walking Tour", Price: 10, Description: strings.Repeat("A long description of the route. ", 8)},
				{ID: "y", Name: "Dinner", Price: 30},
			},
			Transfers: []models.Transfer{{ID: "z", Type: models.TransferBus, Price: 2, Capacity: 40}}}
		days = append(days, day)
	}
	it.Days = days
	it.TotalDays = len(days)

	doc, err := BuildPDF(it, "http://localhost:8080/preview?data=x")
	if err != nil {
		t.Fatalf("BuildPDF: %v", err)
	}
	if len(doc) == 0 {
		t.Fatal("expected a non-empty document")
	}
}

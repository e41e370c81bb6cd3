package preview

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/Dhunu/vigovia/handoff"
	"github.com/Dhunu/vigovia/models"
	"github.com/Dhunu/vigovia/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// GET /preview/pdf?data=<encoded itinerary>
func (rd *Renderer) PDF(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	it, err := handoff.Parse([]byte(r.URL.Query().Get(handoff.Param)))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing or invalid itinerary data")
		return
	}

	previewURL, err := handoff.PreviewURL(rd.baseURL, it)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error encoding itinerary")
		return
	}

	doc, err := BuildPDF(it, previewURL)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+pdfFilename(it))
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}

func pdfFilename(it models.Itinerary) string {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(it.Destination), " ", "-"))
	if slug == "" {
		slug = "itinerary"
	}
	return slug + "-itinerary.pdf"
}

// Palette shared with the HTML preview.
var (
	purple      = [3]int{84, 28, 156}
	lightPurple = [3]int{147, 111, 224}
	headerBlue  = [3]int{74, 144, 226}
)

// BuildPDF lays the itinerary out on A4 in the same content order as the
// HTML preview. Day headers, activity, transfer and flight entries are
// measured up front and pushed to the next page rather than split.
func BuildPDF(it models.Itinerary, previewURL string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	header(pdf, it)
	overview(pdf, it)

	for _, day := range it.Days {
		daySection(pdf, day)
	}

	if len(it.Flights) > 0 {
		ensureRoom(pdf, 40)
		sectionBar(pdf, "Flight Details")
		for _, f := range it.Flights {
			flightEntry(pdf, f)
		}
	}

	ensureRoom(pdf, 70)
	sectionBar(pdf, "Terms and Conditions")
	pdf.SetFont("Arial", "", 9)
	for _, term := range Terms {
		pdf.MultiCell(0, 5, "- "+term, "", "L", false)
	}
	pdf.Ln(4)

	ensureRoom(pdf, 35)
	pdf.SetFillColor(purple[0], purple[1], purple[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "TOTAL", "", 1, "C", true, 0, "")
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 14, fmt.Sprintf("$%.2f", it.TotalPrice), "", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	footer(pdf, previewURL)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func header(pdf *gofpdf.Fpdf, it models.Itinerary) {
	pdf.SetFillColor(headerBlue[0], headerBlue[1], headerBlue[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, "Hi, "+it.CustomerName, "", 1, "R", true, 0, "")
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 10, "vigovia", "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(0, 5, "PLAN.PACK.GO", "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, it.Destination+" Itinerary", "", 1, "C", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%d Days %d Nights", it.TotalDays, it.TotalDays-1), "", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)
}

func overview(pdf *gofpdf.Fpdf, it models.Itinerary) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Trip Overview", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, "Destination: "+it.Destination, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Duration: %d Days %d Nights", it.TotalDays, it.TotalDays-1), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Travel Dates: %s - %s", fmtDate(it.StartDate), fmtDate(it.EndDate)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Customer: "+it.CustomerName, "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func sectionBar(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFillColor(purple[0], purple[1], purple[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 10, title, "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)
}

func daySection(pdf *gofpdf.Fpdf, day models.Day) {
	// keep the day header attached to at least its first entry
	ensureRoom(pdf, 13+entryHeight(30, ""))

	pdf.SetFillColor(purple[0], purple[1], purple[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(100, 10, fmt.Sprintf("Day %d", day.Day), "", 0, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 10, fmtDayDate(day.Date), "", 1, "R", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)

	for _, a := range day.Activities {
		ensureRoom(pdf, entryHeight(15, a.Description))
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(140, 7, a.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, fmt.Sprintf("$%.2f", a.Price), "", 1, "R", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 5, fmt.Sprintf("%s | %s | %s", timeOr(a.Time), a.Location, a.Duration), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		if a.Description != "" {
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, a.Description, "", "L", false)
		}
		pdf.Ln(3)
	}

	for _, t := range day.Transfers {
		ensureRoom(pdf, 20)
		pdf.SetFillColor(lightPurple[0], lightPurple[1], lightPurple[2])
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(120, 7, "Transfer: "+t.TypeLabel(), "", 0, "L", true, 0, "")
		pdf.CellFormat(0, 7, fmt.Sprintf("$%.2f", t.Price), "", 1, "R", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(0, 5, fmt.Sprintf("%s -> %s", t.From, t.To), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("Time: %s | Duration: %s | Capacity: %d", t.Time, t.Duration, t.Capacity), "", 1, "L", false, 0, "")
		pdf.Ln(3)
	}

	pdf.Ln(4)
}

func flightEntry(pdf *gofpdf.Fpdf, f models.Flight) {
	ensureRoom(pdf, 34)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(140, 7, f.TypeLabel()+" Flight", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("$%.2f", f.Price), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Airline: %s | Flight: %s", f.Airline, f.FlightNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Route: %s -> %s", f.Departure, f.Arrival), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Departure: %s | Arrival: %s", fmtDateTime(f.DepartureTime), fmtDateTime(f.ArrivalTime)), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func footer(pdf *gofpdf.Fpdf, previewURL string) {
	ensureRoom(pdf, 40)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, CompanyName, "T", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, "Email: "+CompanyEmail+" | Phone: "+CompanyPhone, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Address: "+CompanyAddress1, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, CompanyAddress2, "", 1, "L", false, 0, "")

	// QR back to the live preview; skipped when the payload outgrows QR
	// capacity (large itineraries).
	qrPNG, err := qrcode.Encode(previewURL, qrcode.Medium, 128)
	if err != nil {
		log.Printf("preview QR skipped: %v", err)
		return
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("preview-qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("preview-qr", 168, pdf.GetY()-21, 26, 26, false, opts, 0, "")
}

// entryHeight estimates the vertical space an entry needs so a page break
// can be taken before it instead of inside it.
func entryHeight(base float64, desc string) float64 {
	if desc == "" {
		return base
	}
	lines := float64(len(desc)/90 + 1)
	return base + lines*5
}

func ensureRoom(pdf *gofpdf.Fpdf, need float64) {
	_, pageH := pdf.GetPageSize()
	_, _, _, marginB := pdf.GetMargins()
	if pdf.GetY()+need > pageH-marginB {
		pdf.AddPage()
	}
}

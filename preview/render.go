// Package preview renders a finalized itinerary as a print-styled page
// and as a downloadable PDF. It only ever reads the handed-off document;
// nothing here writes back to the builder or the store.
package preview

import (
	_ "embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/Dhunu/vigovia/handoff"
	"github.com/Dhunu/vigovia/models"

	"github.com/julienschmidt/httprouter"
)

// Fixed company block shown in the document footer.
const (
	CompanyName     = "Vigovia Travel Technologies (P) Ltd."
	CompanyEmail    = "contact@vigovia.com"
	CompanyPhone    = "+91-98xxx64641"
	CompanyAddress1 = "HD-109 Cinnabar Hills, Links Business Park"
	CompanyAddress2 = "Bangalore North, Bangalore, Karnataka, India-560071"
)

// Terms printed on every itinerary.
var Terms = []string{
	"All prices are subject to availability and may change without prior notice.",
	"Cancellation charges apply as per our standard policy terms.",
	"Travel insurance is highly recommended for all international trips.",
	"Valid passport and visa (if required) are mandatory for travel.",
	"Please arrive at airport 3 hours before international flights.",
	"Hotel check-in: 3:00 PM, check-out: 12:00 PM (standard times).",
	"Itinerary subject to change due to weather or unforeseen circumstances.",
	"All transfers and activities are subject to availability.",
}

//go:embed page.html.tmpl
var pageTmpl string

//go:embed loading.html.tmpl
var loadingTmpl string

var (
	funcs = template.FuncMap{
		"money":    money,
		"date":     fmtDate,
		"dayDate":  fmtDayDate,
		"datetime": fmtDateTime,
		"timeOr":   timeOr,
	}
	page    = template.Must(template.New("page").Funcs(funcs).Parse(pageTmpl))
	loading = template.Must(template.New("loading").Parse(loadingTmpl))
)

type pageData struct {
	It      models.Itinerary
	Nights  int // totalDays - 1, deliberately unclamped
	Terms   []string
	Company []string
}

// Renderer serves the preview endpoints.
type Renderer struct {
	baseURL string
}

func NewRenderer(baseURL string) *Renderer {
	return &Renderer{baseURL: baseURL}
}

// GET /preview?data=<encoded itinerary>
// A missing or unreadable payload keeps the loading page up; the source
// behavior is reproduced on purpose, there is no error view.
func (rd *Renderer) Page(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	it, err := handoff.Parse([]byte(r.URL.Query().Get(handoff.Param)))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err != nil {
		log.Printf("preview payload unreadable: %v", err)
		if terr := loading.Execute(w, nil); terr != nil {
			log.Printf("preview render error: %v", terr)
		}
		return
	}
	if err := page.Execute(w, newPageData(it)); err != nil {
		log.Printf("preview render error: %v", err)
	}
}

func newPageData(it models.Itinerary) pageData {
	return pageData{
		It:     it,
		Nights: it.TotalDays - 1,
		Terms:  Terms,
		Company: []string{
			CompanyName,
			"Email: " + CompanyEmail + " | Phone: " + CompanyPhone,
			"Address: " + CompanyAddress1,
			CompanyAddress2,
		},
	}
}

// money renders an amount to exactly two decimals.
func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// date renders "2025-06-01" as "01 Jun 2025"; unparseable input passes
// through untouched.
func fmtDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("02 Jan 2006")
}

// dayDate renders a day header date: "Sunday, Jun 1".
func fmtDayDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("Monday, Jan 2")
}

// datetime renders the datetime-local flight stamps.
func fmtDateTime(s string) string {
	t, err := time.Parse("2006-01-02T15:04", s)
	if err != nil {
		return s
	}
	return t.Format("02 Jan 2006 15:04")
}

// timeOr fills unscheduled activity slots.
func timeOr(s string) string {
	if s == "" {
		return "TBD"
	}
	return s
}

package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"go-medical-appointment/internal/domain/entity"
	"go-medical-appointment/pkg/response"

	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names double as the collection key of the JSON representation.
const (
	PageIndex            = "index"
	PageDoctors          = "doctors"
	PageDoctorExercises  = "doctor_exercises"
	PagePatients         = "patients"
	PagePatientExercises = "patient_exercises"
	PageExercises        = "exercises"
	PageSpecialities     = "specialities"
	PageAppointments     = "appointments"
	PageAuditLogs        = "audit_logs"
)

var pageTitles = map[string]string{
	PageIndex:            "Medical appointments",
	PageDoctors:          "Doctors",
	PageDoctorExercises:  "Doctor exercises",
	PagePatients:         "Patients",
	PagePatientExercises: "Patient exercises",
	PageExercises:        "Exercises",
	PageSpecialities:     "Specialities",
	PageAppointments:     "Appointments",
	PageAuditLogs:        "Audit log",
}

// pageCollections names the JSON key of pages that do not list their own
// collection; every other page is keyed by its name.
var pageCollections = map[string]string{
	PageDoctorExercises:  PageDoctors,
	PagePatientExercises: PagePatients,
}

// CollectionKey returns the JSON key the page's items are served under.
func CollectionKey(page string) string {
	if collection, ok := pageCollections[page]; ok {
		return collection
	}
	return page
}

var funcs = template.FuncMap{
	"frequencyLabel": func(value string) string {
		return entity.Frequency(value).Label()
	},
	"formatTime": func(t time.Time) string {
		return t.UTC().Format("2006-01-02 15:04:05 UTC")
	},
}

// Renderer writes GET pages as HTML, or as {"<page>": items} JSON when the
// client asks for application/json.
type Renderer struct {
	log       *logrus.Logger
	templates map[string]*template.Template
}

type pageData struct {
	Title string
	Items interface{}
}

func NewRenderer(log *logrus.Logger) (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pageTitles))
	for page := range pageTitles {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", page, err)
		}
		templates[page] = tmpl
	}

	return &Renderer{
		log:       log,
		templates: templates,
	}, nil
}

func WantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func (v *Renderer) Render(w http.ResponseWriter, r *http.Request, page string, items interface{}) {
	if WantsJSON(r) {
		response.JSON(w, http.StatusOK, map[string]interface{}{CollectionKey(page): items})
		return
	}

	tmpl, ok := v.templates[page]
	if !ok {
		v.log.Errorf("Unknown page %q", page)
		response.InternalServerError(w, "")
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", pageData{Title: pageTitles[page], Items: items}); err != nil {
		v.log.Errorf("Failed to render %s page: %+v", page, err)
		response.InternalServerError(w, "")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// Link is one entry of the index page.
type Link struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func IndexLinks() []Link {
	return []Link{
		{Name: "Doctors", Path: "/doctor/"},
		{Name: "Patients", Path: "/patient/"},
		{Name: "Exercises", Path: "/exercise/"},
		{Name: "Specialities", Path: "/speciality/"},
		{Name: "Appointments", Path: "/appointment/"},
		{Name: "Audit log", Path: "/audit-log/"},
	}
}

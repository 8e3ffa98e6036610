// Package web embeds the admin page template and its static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/angelmondragon/inventory-service/pkg/enums"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// AdminPage is the data rendered into the admin template.
type AdminPage struct {
	Title            string
	Conditions       []enums.Condition
	IntakeConditions []enums.Condition
}

// NewAdminPage returns the page data with the condition options filled in.
func NewAdminPage() AdminPage {
	page := AdminPage{Title: "Inventory Management System"}
	for _, c := range enums.Conditions() {
		page.Conditions = append(page.Conditions, c)
		if c.IsIntake() {
			page.IntakeConditions = append(page.IntakeConditions, c)
		}
	}
	return page
}

// Templates parses the embedded HTML templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// Static serves the embedded assets. Mount it with the /static/ prefix stripped.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

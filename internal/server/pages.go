package server

import (
	_ "embed"
	"html/template"
	"net/http"

	jsonwriter "github.com/riftrewind/rift-front/internal/json"
	"github.com/riftrewind/rift-front/internal/log"
	"github.com/riftrewind/rift-front/internal/session"
)

//go:embed templates/login.html
var loginPageTemplateHTML string

//go:embed templates/dashboard.html
var dashboardPageTemplateHTML string

var loginPageTemplate = template.Must(template.New("login").Parse(loginPageTemplateHTML))
var dashboardPageTemplate = template.Must(template.New("dashboard").Parse(dashboardPageTemplateHTML))

// LoginPageData represents the data for the login page
type LoginPageData struct {
	Error string
}

// LoginPageHandler renders the login page, surfacing any error message the
// auth handlers put in the query string
func (h *AuthHandlers) LoginPageHandler(w http.ResponseWriter, r *http.Request) {
	data := LoginPageData{Error: r.URL.Query().Get("error")}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := loginPageTemplate.Execute(w, data); err != nil {
		log.LogError("Failed to render login page: %v", err)
		jsonwriter.WriteInternalServerError(w, "Failed to render page")
	}
}

// DashboardHandler renders the protected landing page. The session guard has
// already checked cookie presence; an unparseable identity cookie just
// renders an empty identity.
func (h *AuthHandlers) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := session.IdentityFromRequest(r)
	if err != nil {
		log.LogDebug("Could not parse identity cookie: %v", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardPageTemplate.Execute(w, identity); err != nil {
		log.LogError("Failed to render dashboard page: %v", err)
		jsonwriter.WriteInternalServerError(w, "Failed to render page")
	}
}

package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/alexedwards/scs"
	"github.com/rs/zerolog/hlog"
	"github.com/sidereusnuntius/goblog/internal/config"
	"github.com/sidereusnuntius/goblog/internal/service"
	"github.com/sidereusnuntius/goblog/templates"
)

const (
	LoginRoute    = "/auth/login"
	RegisterRoute = "/auth/register"
	LogoutRoute   = "/auth/logout"
	ProfileRoute  = "/user/profile"
	PostsPath     = "/posts"
)

// MaxMemory is the part of a multipart body kept in memory; the rest goes to temporary files.
const MaxMemory = 1 << 20

type Handler struct {
	Config         *config.Configuration
	service        service.Service
	SessionManager *scs.Manager
}

func New(config *config.Configuration, service service.Service, manager *scs.Manager) Handler {
	return Handler{
		Config:         config,
		service:        service,
		SessionManager: manager,
	}
}

// render writes child inside the page layout, which shows the navigation of the resolved user, if any.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, title string, place templates.Place, child templ.Component) {
	s, ok := GetSession(r.Context())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	err := templates.Layout(templates.PageData{
		BlogName:      h.Config.Name,
		Authenticated: ok,
		Username:      s.Username,
		PageTitle:     title,
		Place:         place,
		Child:         child,
	}).Render(r.Context(), w)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to render page")
	}
}

// renderError shows the generic error page. Upstream failures are logged and their details hidden.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := GetCode(err)
	msg := message(err)
	if status == http.StatusInternalServerError {
		hlog.FromRequest(r).Error().Err(err).Msg("request failed")
		msg = "Something went wrong. Please try again later."
	}
	h.render(w, r, status, "Error", templates.PlaceError, templates.ErrorPage(status, msg))
}

func GetCode(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// message returns the text shown to the user for an error that is rendered inline.
func message(err error) string {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return "Not found"
	case errors.Is(err, service.ErrForbidden):
		return "You are not allowed to do that"
	case errors.Is(err, service.ErrEmailTaken):
		return "Email already in use"
	case errors.Is(err, service.ErrInvalidInput):
		return strings.TrimPrefix(err.Error(), service.ErrInvalidInput.Error()+": ")
	default:
		return err.Error()
	}
}

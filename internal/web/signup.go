package web

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"github.com/sidereusnuntius/goblog/internal/service"
	"github.com/sidereusnuntius/goblog/templates"
)

func SignUp(s *Handler) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := r.ParseForm(); err != nil {
			renderSignup(s, w, r, http.StatusBadRequest, "", "", "Invalid form")
			return
		}

		username := r.Form.Get("username")
		email := r.Form.Get("email")
		password := r.Form.Get("password")

		u, err := s.service.Register(ctx, username, email, password)
		if err != nil {
			if errors.Is(err, service.ErrEmailTaken) || errors.Is(err, service.ErrInvalidInput) {
				renderSignup(s, w, r, GetCode(err), username, email, message(err))
				return
			}
			s.renderError(w, r, err)
			return
		}

		hlog.FromRequest(r).Info().Str("user", u.ID.String()).Msg("new registration")
		http.Redirect(w, r, LoginRoute, http.StatusSeeOther)
	})
}

func GetSignup(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderSignup(handler, w, r, http.StatusOK, "", "", "")
	}
}

func renderSignup(handler *Handler, w http.ResponseWriter, r *http.Request, status int, username, email, errMsg string) {
	handler.render(w, r, status, "Register", templates.PlaceSignup, templates.SignUp(RegisterRoute, username, email, errMsg))
}

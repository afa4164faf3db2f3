package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"github.com/sidereusnuntius/goblog/internal/domain"
	"github.com/sidereusnuntius/goblog/internal/service"
	"github.com/sidereusnuntius/goblog/templates"
)

// SessionKey is the key of the user id in the session data.
const SessionKey = "user_id"

// Session is the identity resolved for a request.
type Session struct {
	domain.User
}

type key struct{}

func GetSession(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(key{}).(Session)
	return s, ok
}

// AuthenticatedMiddleware sends anonymous requests to the login page.
func AuthenticatedMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := GetSession(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}
			http.Redirect(w, r, LoginRoute, http.StatusSeeOther)
		})
	}
}

// SessionMiddleware resolves the user id stored in the session to a user. Requests whose session is missing, cannot
// be read or points to a user that no longer exists are handled as anonymous.
func SessionMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			session := handler.SessionManager.Load(r)
			id, err := session.GetInt64(SessionKey)
			if err != nil {
				hlog.FromRequest(r).Warn().Err(err).Msg("unreadable session")
			}

			if err == nil && id != 0 {
				u, err := handler.service.GetUser(ctx, domain.ID(id))
				switch {
				case err == nil:
					r = r.WithContext(context.WithValue(ctx, key{}, Session{u}))
				case !errors.Is(err, service.ErrNotFound):
					hlog.FromRequest(r).Error().Err(err).Int64("user", id).Msg("failed to resolve session user")
				}
			}

			h.ServeHTTP(w, r)
		})
	}
}

func Login(handler *Handler) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := r.ParseForm(); err != nil {
			renderLogin(handler, w, r, http.StatusBadRequest, "", "Invalid form")
			return
		}

		email := r.Form.Get("email")
		password := r.Form.Get("password")
		u, err := handler.service.Login(ctx, email, password)
		if err != nil {
			if errors.Is(err, service.ErrNoSuchUser) ||
				errors.Is(err, service.ErrBadPassword) ||
				errors.Is(err, service.ErrInvalidInput) {
				hlog.FromRequest(r).Debug().Err(err).Msg("login failed")
				renderLogin(handler, w, r, http.StatusUnauthorized, email, "Invalid email or password")
				return
			}
			handler.renderError(w, r, err)
			return
		}

		session := handler.SessionManager.Load(r)
		if err = session.RenewToken(w); err == nil {
			err = session.PutInt64(w, SessionKey, int64(u.ID))
		}
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("failed to create session")
			renderLogin(handler, w, r, http.StatusInternalServerError, email, "Failed to create the session; please try again")
			return
		}

		http.Redirect(w, r, ProfileRoute, http.StatusSeeOther)
	})
}

func GetLogin(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderLogin(handler, w, r, http.StatusOK, "", "")
	}
}

func renderLogin(handler *Handler, w http.ResponseWriter, r *http.Request, status int, email, errMsg string) {
	handler.render(w, r, status, "Log in", templates.PlaceLogin, templates.Login(LoginRoute, email, errMsg))
}

// Logout destroys the session. If that fails the user could still be logged in, so the error page is shown instead
// of the redirect.
func Logout(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := handler.SessionManager.Load(r).Destroy(w); err != nil {
			handler.renderError(w, r, err)
			return
		}
		http.Redirect(w, r, LoginRoute, http.StatusSeeOther)
	}
}

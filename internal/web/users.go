package web

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"github.com/sidereusnuntius/goblog/internal/domain"
	"github.com/sidereusnuntius/goblog/internal/service"
	"github.com/sidereusnuntius/goblog/templates"
)

func Profile(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s, _ := GetSession(ctx)

		p, err := h.service.GetProfile(ctx, s.ID)
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		h.render(w, r, http.StatusOK, p.Username, templates.PlaceProfile, templates.Profile(p))
	}
}

func GetEditProfile(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())
		h.render(w, r, http.StatusOK, "Edit profile", templates.PlaceProfile, templates.EditProfile(s.User, ""))
	}
}

func EditProfile(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s, _ := GetSession(ctx)

		if err := h.parseForm(w, r); err != nil {
			h.render(w, r, http.StatusBadRequest, "Edit profile", templates.PlaceProfile,
				templates.EditProfile(s.User, "The form could not be read; files must not exceed the upload limit"))
			return
		}

		username := r.FormValue("username")
		bio := r.FormValue("bio")
		uploads, err := readUploads(r, "profilePicture")
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		var picture *domain.Upload
		if len(uploads) > 0 {
			picture = &uploads[0]
		}

		_, err = h.service.UpdateProfile(ctx, s.ID, username, bio, picture)
		if err != nil {
			if errors.Is(err, service.ErrInvalidInput) {
				edited := s.User
				edited.Username = username
				edited.Bio = bio
				h.render(w, r, http.StatusBadRequest, "Edit profile", templates.PlaceProfile, templates.EditProfile(edited, message(err)))
				return
			}
			h.renderError(w, r, err)
			return
		}

		http.Redirect(w, r, ProfileRoute, http.StatusSeeOther)
	}
}

// DeleteAccount deletes the account of the logged in user and everything they own, then ends the session. A failure
// in the middle of the cascade stops it and shows the error page; the account can be deleted again later.
func DeleteAccount(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s, _ := GetSession(ctx)

		err := h.service.DeleteAccount(ctx, s.ID)
		if err != nil && !errors.Is(err, service.ErrNotFound) {
			h.renderError(w, r, err)
			return
		}

		if err = h.SessionManager.Load(r).Destroy(w); err != nil {
			h.renderError(w, r, err)
			return
		}

		hlog.FromRequest(r).Info().Str("user", s.ID.String()).Msg("account deleted")
		http.Redirect(w, r, RegisterRoute, http.StatusSeeOther)
	}
}

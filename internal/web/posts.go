package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sidereusnuntius/goblog/internal/domain"
	"github.com/sidereusnuntius/goblog/internal/service"
	"github.com/sidereusnuntius/goblog/templates"
)

// HomePostCount is the number of recent posts shown on the home page.
const HomePostCount = 10

func Home(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.service.ListPosts(r.Context(), HomePostCount)
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		h.render(w, r, http.StatusOK, "Home", templates.PlaceHome, templates.Home(h.Config.Name, posts))
	}
}

func ListPosts(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.service.ListPosts(r.Context(), 0)
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		h.render(w, r, http.StatusOK, "Posts", templates.PlacePosts, templates.PostList(posts))
	}
}

func GetPostForm(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, http.StatusOK, "New post", templates.PlaceNewPost, templates.PostForm("", "", ""))
	}
}

func CreatePost(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s, _ := GetSession(ctx)

		if err := h.parseForm(w, r); err != nil {
			h.render(w, r, http.StatusBadRequest, "New post", templates.PlaceNewPost,
				templates.PostForm("", "", "The form could not be read; files must not exceed the upload limit"))
			return
		}

		title := r.FormValue("title")
		content := r.FormValue("content")
		images, err := readUploads(r, "image")
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		id, err := h.service.CreatePost(ctx, s.ID, title, content, images)
		if err != nil {
			if code := GetCode(err); code == http.StatusBadRequest {
				h.render(w, r, code, "New post", templates.PlaceNewPost, templates.PostForm(title, content, message(err)))
				return
			}
			h.renderError(w, r, err)
			return
		}

		http.Redirect(w, r, PostsPath+"/"+id.String(), http.StatusSeeOther)
	}
}

func GetPost(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := domain.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			h.renderError(w, r, service.ErrNotFound)
			return
		}
		h.renderPost(w, r, id, http.StatusOK, "")
	}
}

// renderPost renders the page of the post, with errMsg shown above the comments.
func (h *Handler) renderPost(w http.ResponseWriter, r *http.Request, id domain.ID, status int, errMsg string) {
	details, err := h.service.GetPost(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	s, _ := GetSession(r.Context())
	h.render(w, r, status, details.Title, templates.PlacePosts, templates.PostPage(details, s.ID, errMsg))
}

func DeletePost(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s, _ := GetSession(ctx)
		id, err := domain.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			h.renderError(w, r, service.ErrNotFound)
			return
		}

		err = h.service.DeletePost(ctx, s.ID, id)
		if errors.Is(err, service.ErrForbidden) {
			h.renderPost(w, r, id, http.StatusForbidden, message(err))
			return
		}
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		http.Redirect(w, r, ProfileRoute, http.StatusSeeOther)
	}
}

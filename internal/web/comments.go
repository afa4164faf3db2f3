package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sidereusnuntius/goblog/internal/domain"
	"github.com/sidereusnuntius/goblog/internal/service"
)

func AddComment(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s, _ := GetSession(ctx)
		postId, err := domain.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			h.renderError(w, r, service.ErrNotFound)
			return
		}

		_, err = h.service.AddComment(ctx, s.ID, postId, r.FormValue("content"))
		if errors.Is(err, service.ErrInvalidInput) {
			h.renderPost(w, r, postId, http.StatusBadRequest, message(err))
			return
		}
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		http.Redirect(w, r, PostsPath+"/"+postId.String(), http.StatusSeeOther)
	}
}

func EditComment(h *Handler) http.HandlerFunc {
	return commentMutation(h, func(r *http.Request, actor, comment domain.ID) (domain.ID, error) {
		return h.service.EditComment(r.Context(), actor, comment, r.FormValue("content"))
	})
}

func DeleteComment(h *Handler) http.HandlerFunc {
	return commentMutation(h, func(r *http.Request, actor, comment domain.ID) (domain.ID, error) {
		return h.service.DeleteComment(r.Context(), actor, comment)
	})
}

// commentMutation runs mutate on the comment in the path on behalf of the logged in user, then sends the user back
// to the post the comment belongs to. Ownership and validation errors are shown inline on that post.
func commentMutation(h *Handler, mutate func(r *http.Request, actor, comment domain.ID) (domain.ID, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())
		commentId, err := domain.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			h.renderError(w, r, service.ErrNotFound)
			return
		}

		postId, err := mutate(r, s.ID, commentId)
		switch code := GetCode(err); {
		case err == nil:
			http.Redirect(w, r, PostsPath+"/"+postId.String()+"#comment-"+commentId.String(), http.StatusSeeOther)
		case postId == 0 || code == http.StatusInternalServerError:
			h.renderError(w, r, err)
		default:
			h.renderPost(w, r, postId, code, message(err))
		}
	}
}

package web

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// Mount registers the blog's routes on r. The session and method override middlewares are added to r, so any
// middleware of the caller must be registered before.
func (h *Handler) Mount(r chi.Router) {
	authenticated := AuthenticatedMiddleware(h)
	r.Use(MethodOverride)
	r.Use(SessionMiddleware(h))

	r.Get("/", Home(h))

	r.Route("/auth", func(r chi.Router) {
		r.Get("/login", GetLogin(h))
		r.Post("/login", Login(h))
		r.Get("/register", GetSignup(h))
		r.Post("/register", SignUp(h))
		r.Get("/logout", Logout(h))
	})

	r.Route("/user", func(r chi.Router) {
		r.Use(authenticated)
		r.Get("/profile", Profile(h))
		r.Get("/edit", GetEditProfile(h))
		r.Post("/edit", EditProfile(h))
		r.Post("/delete", DeleteAccount(h))
		r.Delete("/delete", DeleteAccount(h))
	})

	r.Route(PostsPath, func(r chi.Router) {
		r.Get("/", ListPosts(h))
		r.With(authenticated).Get("/add", GetPostForm(h))
		r.With(authenticated).Post("/add", CreatePost(h))
		r.Get("/{id}", GetPost(h))
		r.With(authenticated).Delete("/{id}", DeletePost(h))
		r.With(authenticated).Post("/{id}/comments", AddComment(h))
	})

	r.Route("/comment/{id}", func(r chi.Router) {
		r.Use(authenticated)
		r.Put("/", EditComment(h))
		r.Delete("/", DeleteComment(h))
	})

	r.Get("/f/{key}", GetFile(h))

	h.MountStaticRoutes(r)
}

func (h *Handler) MountStaticRoutes(r chi.Router) {
	wd, _ := os.Getwd()
	wd = filepath.Join(wd, h.Config.StaticDir)
	f := os.DirFS(wd)

	fileServer := http.FileServer(http.FS(f))
	r.Handle("/static/{name}", http.StripPrefix(
		"/static/",
		fileServer,
	))
}

// Package templates holds the blog's pages as templ components.
//
// The *_templ.go files are generated from the .templ sources; run go generate after editing them.
package templates

//go:generate go tool templ generate

import (
	"strconv"
	"time"

	"github.com/a-h/templ"
)

type Place int

const (
	PlaceHome Place = iota
	PlaceLogin
	PlaceSignup
	PlaceProfile
	PlacePosts
	PlaceNewPost
	PlaceError
)

type PageData struct {
	BlogName      string
	Authenticated bool
	Username      string
	PageTitle     string
	Place         Place
	Child         templ.Component
}

type navItem struct {
	place Place
	href  string
	label string
}

var (
	anonymousNav = []navItem{
		{PlaceHome, "/", "Home"},
		{PlacePosts, "/posts", "Posts"},
		{PlaceLogin, "/auth/login", "Log in"},
		{PlaceSignup, "/auth/register", "Register"},
	}
	authenticatedNav = []navItem{
		{PlaceHome, "/", "Home"},
		{PlacePosts, "/posts", "Posts"},
		{PlaceNewPost, "/posts/add", "New post"},
		{PlaceProfile, "/user/profile", "Profile"},
	}
)

func navigation(authenticated bool) []navItem {
	if authenticated {
		return authenticatedNav
	}
	return anonymousNav
}

func title(data PageData) string {
	if data.BlogName == "" {
		return data.PageTitle
	}
	return data.PageTitle + " | " + data.BlogName
}

func date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

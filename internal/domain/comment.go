package domain

import "time"

type Comment struct {
	ID       ID
	Content  string
	PostID   ID
	AuthorID ID
	// Author is the author's username; it is only filled when comments are listed for display.
	Author  string
	Created time.Time
	Updated time.Time
}

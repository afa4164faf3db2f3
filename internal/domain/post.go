package domain

import "time"

type Post struct {
	ID       ID
	Title    string
	Content  string
	AuthorID ID
	Author   string
	Images   []File
	Created  time.Time
	Updated  time.Time
}

// PostDetails is a post together with its comments, oldest first.
type PostDetails struct {
	Post
	Comments []Comment
}

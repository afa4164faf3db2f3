package domain

import "time"

type User struct {
	ID       ID
	Username string
	Email    string
	Bio      string
	// Picture is nil when the user has no profile picture.
	Picture *File
	Created time.Time
	Updated time.Time
}

// Account holds the data needed to authenticate a user. It never leaves the service layer.
type Account struct {
	UserID   ID
	Username string
	Email    string
	Password string
}

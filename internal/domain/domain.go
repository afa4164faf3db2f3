package domain

import "strconv"

// ID identifies every stored record. Ownership checks compare IDs by value, so the resolved identity of a request
// and the author of a resource are always of this type.
type ID int64

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseID parses the decimal representation of an ID, as found in URL paths.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return ID(n), nil
}

type Profile struct {
	User
	// Posts are the user's posts, newest first.
	Posts      []Post
	CommentIDs []ID
}

package domain

import (
	"net/url"
	"time"
)

const (
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
)

// File is the local record of an asset held by the external storage. Key is the storage's reference to the object,
// needed to delete it.
type File struct {
	ID         ID
	Key        string
	Url        *url.URL
	MimeType   string
	SizeBytes  int64
	UploaderId ID
	Created    time.Time
}

// Upload is a file received from a client, not yet persisted anywhere.
type Upload struct {
	Filename string
	MimeType string
	Content  []byte
}

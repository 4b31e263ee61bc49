package upload

import "io"

// File is an uploaded part as received from the client.
// ContentType is nil when the part carries no Content-Type header.
type File struct {
	Filename    string
	ContentType *string
	Body        io.Reader
}

// Result describes an upload. Nothing is persisted.
type Result struct {
	Filename    string  `json:"filename"`
	ContentType *string `json:"content_type"`
	Size        int64   `json:"size"`
}

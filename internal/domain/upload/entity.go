package upload

import "io"

// StoredFile is an opened upload ready to stream back.
type StoredFile struct {
	Body        io.ReadCloser
	ContentType string
}

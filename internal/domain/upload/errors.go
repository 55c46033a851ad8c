package upload

import "errors"

var (
	ErrNoValidImages = errors.New("no valid image files were uploaded")
)

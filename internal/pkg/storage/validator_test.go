package storage

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestValidateFile(t *testing.T) {
	data, mime, err := ValidateFile(bytes.NewReader(pngBytes(t)), CategoryImage, 1024)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.NotEmpty(t, data)

	_, _, err = ValidateFile(strings.NewReader("just text"), CategoryImage, 1024)
	assert.ErrorIs(t, err, ErrInvalidMimeType)

	_, _, err = ValidateFile(bytes.NewReader(pngBytes(t)), CategoryImage, 10)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, _, err = ValidateFile(bytes.NewReader(nil), CategoryImage, 10)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestContentTypeForKey(t *testing.T) {
	assert.Equal(t, "image/jpeg", ContentTypeForKey("x/photo.JPEG"))
	assert.Equal(t, "image/webp", ContentTypeForKey("a.webp"))
	assert.Equal(t, "application/octet-stream", ContentTypeForKey("notes"))
}

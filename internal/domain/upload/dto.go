package upload

// UploadResponse lists public URLs of the stored images.
type UploadResponse struct {
	URLs  []string `json:"urls"`
	Count int      `json:"count"`
}

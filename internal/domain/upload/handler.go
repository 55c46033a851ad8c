package upload

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/misk/misk-api/internal/pkg/errorhandler"
	"github.com/misk/misk-api/internal/pkg/logger"
	"github.com/misk/misk-api/internal/pkg/response"
	"github.com/misk/misk-api/internal/pkg/storage"
)

const (
	MaxRequestSize   = 100 * 1024 * 1024 // whole multipart body
	maxMemory        = 32 * 1024 * 1024
	formField        = "images"
	immutableCaching = "public, max-age=31536000, immutable"
)

// Handler handles upload HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates upload handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// UploadImages handles POST /upload/images
func (h *Handler) UploadImages(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestSize)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File[formField]
	if len(files) == 0 {
		response.BadRequest(w, "No files uploaded")
		return
	}

	resp, err := h.service.SaveImages(r.Context(), files)
	if err != nil {
		if errors.Is(err, ErrNoValidImages) {
			response.BadRequest(w, "No valid image files were uploaded")
			return
		}
		errorhandler.HandleInternal(r.Context(), w, "upload.images", err)
		return
	}

	response.OK(w, resp)
}

// Serve handles GET /uploads/*
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if strings.Contains(key, "..") || strings.Contains(key, "~") {
		response.Forbidden(w, "Invalid path")
		return
	}
	if key == "" {
		response.NotFound(w, "File not found")
		return
	}

	file, err := h.service.Open(r.Context(), key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.NotFound(w, "File not found")
			return
		}
		errorhandler.HandleInternal(r.Context(), w, "upload.serve", err)
		return
	}
	defer file.Body.Close()

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Cache-Control", immutableCaching)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, file.Body); err != nil {
		logger.FromContext(r.Context()).Debug().Err(err).Str("key", key).Msg("Upload stream interrupted")
	}
}

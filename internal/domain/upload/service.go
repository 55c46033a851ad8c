package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"

	"github.com/misk/misk-api/internal/pkg/logger"
	"github.com/misk/misk-api/internal/pkg/storage"
)

// ImageProcessor downsizes oversized images before storage.
type ImageProcessor interface {
	Fit(data []byte, mimeType string) ([]byte, bool, error)
}

// Service stores uploaded studio images
type Service struct {
	storage   storage.Storage
	processor ImageProcessor
	newKey    func(ext string) string
}

// NewService creates upload service. processor may be nil.
func NewService(store storage.Storage, processor ImageProcessor) *Service {
	return &Service{
		storage:   store,
		processor: processor,
		newKey: func(ext string) string {
			return uuid.NewString() + ext
		},
	}
}

// SaveImages stores every acceptable file and returns their public URLs.
// Files that are empty, too large or not images are skipped.
func (s *Service) SaveImages(ctx context.Context, files []*multipart.FileHeader) (*UploadResponse, error) {
	log := logger.FromContext(ctx)
	resp := &UploadResponse{URLs: []string{}}
	var stored []string

	for _, fh := range files {
		data, mimeType, err := s.readImage(fh)
		if err != nil {
			log.Debug().Err(err).Str("filename", fh.Filename).Msg("Skipping uploaded file")
			continue
		}

		if s.processor != nil {
			fitted, resized, err := s.processor.Fit(data, mimeType)
			if err != nil {
				log.Debug().Err(err).Str("filename", fh.Filename).Msg("Skipping undecodable image")
				continue
			}
			if resized {
				log.Debug().Str("filename", fh.Filename).Int("bytes", len(fitted)).Msg("Image downscaled")
			}
			data = fitted
		}

		key := s.newKey(storage.GetExtensionForMime(mimeType))
		if err := s.storage.Put(ctx, key, bytes.NewReader(data), mimeType); err != nil {
			s.discard(ctx, stored)
			return nil, fmt.Errorf("store image %s: %w", key, err)
		}
		stored = append(stored, key)

		resp.URLs = append(resp.URLs, s.storage.GetURL(key))
	}

	resp.Count = len(resp.URLs)
	if resp.Count == 0 {
		return nil, ErrNoValidImages
	}

	log.Info().Int("count", resp.Count).Msg("Images uploaded")
	return resp, nil
}

// discard removes files of a batch that failed part way.
func (s *Service) discard(ctx context.Context, keys []string) {
	ctx = context.WithoutCancel(ctx)
	for _, key := range keys {
		if err := s.storage.Delete(ctx, key); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("Failed to remove partial upload")
		}
	}
}

func (s *Service) readImage(fh *multipart.FileHeader) ([]byte, string, error) {
	maxSize := storage.MaxFileSizes[storage.CategoryImage]
	if fh.Size > maxSize {
		return nil, "", storage.ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	return storage.ValidateFile(f, storage.CategoryImage, maxSize)
}

// Open returns a stored file for serving.
func (s *Service) Open(ctx context.Context, key string) (*StoredFile, error) {
	rc, err := s.storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("open %s: %w", key, err)
	}
	return &StoredFile{Body: rc, ContentType: storage.ContentTypeForKey(key)}, nil
}

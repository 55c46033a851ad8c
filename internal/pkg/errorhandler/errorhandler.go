package errorhandler

import (
	"context"
	"net/http"

	"github.com/misk/misk-api/internal/pkg/logger"
	"github.com/misk/misk-api/internal/pkg/response"
)

// HandleInternal logs err and answers with the generic 500 body.
func HandleInternal(ctx context.Context, w http.ResponseWriter, operation string, err error) {
	logger.FromContext(ctx).Error().
		Err(err).
		Str("operation", operation).
		Msg("Request failed")

	response.InternalError(w)
}

// LogValidationError logs rejected input at debug level.
func LogValidationError(ctx context.Context, details map[string]string) {
	logger.FromContext(ctx).Debug().
		Interface("fields", details).
		Msg("Validation failed")
}

// LogExternalServiceError logs failures of third-party calls.
func LogExternalServiceError(ctx context.Context, service string, err error) {
	logger.FromContext(ctx).Warn().
		Str("service", service).
		Err(err).
		Msg("External service error")
}

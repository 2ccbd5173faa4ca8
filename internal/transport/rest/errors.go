package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jacwu/toy-store/internal/domain"
	"github.com/jacwu/toy-store/pkg/ctxutil"
)

const (
	msgInternal        = "Internal server error"
	msgInvalidBody     = "Invalid request body"
	msgBodyTooLarge    = "Request body too large"
	msgValidation      = "Input validation failed"
	msgEndpointMissing = "Endpoint not found"
	msgMethodNotAllow  = "Method not allowed"
)

// statusCoder is implemented by errors that choose their own HTTP status.
type statusCoder interface {
	StatusCode() int
}

// responder maps service errors to envelope responses.
// When verbose is set, unexpected errors expose their text in the "error" field.
type responder struct {
	log     *slog.Logger
	verbose bool
}

func (rs responder) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validation *domain.ValidationError
		domainErr  *domain.Error
		tooLarge   *http.MaxBytesError
		coder      statusCoder
	)

	switch {
	case errors.As(err, &validation):
		resp := failureResponse{Message: msgValidation}
		for _, fe := range validation.Errors {
			resp.Errors = append(resp.Errors, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.As(err, &domainErr):
		writeFailure(w, kindStatus(domainErr.Kind), domainErr.Message)
	case errors.As(err, &tooLarge):
		writeFailure(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
	case errors.As(err, &coder):
		writeFailure(w, coder.StatusCode(), err.Error())
	default:
		rs.log.ErrorContext(r.Context(), "unhandled error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			slog.String("error", err.Error()),
		)
		resp := failureResponse{Message: msgInternal}
		if rs.verbose {
			resp.Error = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, resp)
	}
}

// handleDecodeError reports a body that could not be decoded.
func (rs responder) handleDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeFailure(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
		return
	}
	writeFailure(w, http.StatusBadRequest, msgInvalidBody)
}

func kindStatus(kind error) int {
	switch {
	case errors.Is(kind, domain.ErrValidation), errors.Is(kind, domain.ErrInvalidReference):
		return http.StatusBadRequest
	case errors.Is(kind, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(kind, domain.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(kind, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// NotFound answers requests that match no route.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeFailure(w, http.StatusNotFound, msgEndpointMissing)
}

// MethodNotAllowed answers requests whose path matches but method does not.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeFailure(w, http.StatusMethodNotAllowed, msgMethodNotAllow)
}

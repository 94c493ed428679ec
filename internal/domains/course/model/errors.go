package model

import (
	"errors"
	"net/http"
)

var (
	ErrCourseNotFound          = errors.New("course not found")
	ErrDraftNotFound           = errors.New("course draft not found or expired")
	ErrNotCourseOwner          = errors.New("user is not the owner of this course")
	ErrDraftCorrupt            = errors.New("stored draft record is corrupt")
	ErrStaleDraftVersion       = errors.New("draft was modified by another request")
	ErrDuplicateCourse         = errors.New("course has already been published")
	ErrNoFilesProvided         = errors.New("no files provided")
	ErrUploadFailed            = errors.New("all file uploads failed")
	ErrVideoServiceUnavailable = errors.New("video service unavailable")
	ErrPublishFailed           = errors.New("failed to publish course")
)

// GetHTTPStatusCode maps a domain error to the HTTP status it should be
// served with.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrCourseNotFound), errors.Is(err, ErrDraftNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotCourseOwner):
		return http.StatusUnauthorized
	case errors.Is(err, ErrDraftCorrupt):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrStaleDraftVersion), errors.Is(err, ErrDuplicateCourse):
		return http.StatusConflict
	case errors.Is(err, ErrNoFilesProvided), errors.Is(err, ErrUploadFailed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode maps a domain error to the machine-readable code placed in the
// response envelope.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrCourseNotFound), errors.Is(err, ErrDraftNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrNotCourseOwner):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrDraftCorrupt):
		return "INVALID_DRAFT"
	case errors.Is(err, ErrStaleDraftVersion):
		return "CONFLICT"
	case errors.Is(err, ErrDuplicateCourse):
		return "DUPLICATE_DATA"
	case errors.Is(err, ErrNoFilesProvided), errors.Is(err, ErrUploadFailed):
		return "UPLOAD_FAILED"
	case errors.Is(err, ErrVideoServiceUnavailable):
		return "EXTERNAL_SERVICE_ERROR"
	case errors.Is(err, ErrPublishFailed):
		return "PUBLISH_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

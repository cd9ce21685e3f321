package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrValidation
	ErrDraftNotFound
	ErrVariantLimit
	ErrVariantsNotEmpty
	ErrImageLimit
	ErrUploadFailed
	ErrSubmissionFailed
	ErrListingNameExists
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "success",
	ErrInternal:          "error internal",
	ErrNotFound:          "data not found",
	ErrInvalidRequest:    "invalid request",
	ErrUnauthorize:       "unauthorize request",
	ErrValidation:        "listing validation failed",
	ErrDraftNotFound:     "no draft is open for this session",
	ErrVariantLimit:      "variant limit reached",
	ErrVariantsNotEmpty:  "variants exist, confirm before disabling",
	ErrImageLimit:        "image limit reached",
	ErrUploadFailed:      "image upload failed, please try again",
	ErrSubmissionFailed:  "submission failed, your draft was not changed",
	ErrListingNameExists: "a listing with this name already exists",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusBadRequest,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrUnauthorize:       http.StatusUnauthorized,
	ErrValidation:        http.StatusUnprocessableEntity,
	ErrDraftNotFound:     http.StatusNotFound,
	ErrVariantLimit:      http.StatusBadRequest,
	ErrVariantsNotEmpty:  http.StatusConflict,
	ErrImageLimit:        http.StatusBadRequest,
	ErrUploadFailed:      http.StatusBadGateway,
	ErrSubmissionFailed:  http.StatusBadGateway,
	ErrListingNameExists: http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrNotFound:          "0002",
	ErrInvalidRequest:    "0003",
	ErrUnauthorize:       "0004",
	ErrValidation:        "0005",
	ErrDraftNotFound:     "0006",
	ErrVariantLimit:      "0007",
	ErrVariantsNotEmpty:  "0008",
	ErrImageLimit:        "0009",
	ErrUploadFailed:      "0010",
	ErrSubmissionFailed:  "0011",
	ErrListingNameExists: "0012",
}

type ContextKey string

// UserIDKey carries the authenticated user id through request contexts.
const UserIDKey ContextKey = "user_id"

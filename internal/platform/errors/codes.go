// Package errors provides coded errors shared by the portfolio packages.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// CodeInvalidArgument marks caller input that can never succeed.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// CodeNotFound marks a missing portfolio, project or asset.
	CodeNotFound Code = "NOT_FOUND"

	// CodeInvalidContent marks a content file that failed validation.
	CodeInvalidContent Code = "INVALID_CONTENT"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

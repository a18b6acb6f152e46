package adapter

import "errors"

// Sentinel transport errors produced by mapHTTPError. Wrapped values carry the
// response body for diagnostics; match with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
)

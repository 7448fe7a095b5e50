package domain

import "errors"

// ErrNotFound is returned when the targeted trip or day does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule (e.g. missing
// required field, deleting the last remaining day, unparseable imported trip
// data). The state is left unchanged. Handlers should map this to HTTP 422.
var ErrValidation = errors.New("validation error")

// ErrDecode is returned by the share codec when a token cannot be decoded
// (malformed percent-encoding, invalid base64, invalid UTF-8). Callers treat
// any decode failure as "no shareable payload present" — it is never fatal.
var ErrDecode = errors.New("decode error")

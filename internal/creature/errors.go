package creature

import "errors"

// Failure classes callers branch on with errors.Is. The resolvers never
// substitute defaults for these; fallback policy belongs to the caller.
var (
	// ErrNotFound: species ID or display name absent from the roster.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument: a code outside the recognized domain.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConfig: the data asset is defective for the requested operation.
	ErrConfig = errors.New("configuration error")
)

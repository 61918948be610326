package loader

import "errors"

// Loader errors.
var (
	ErrRaggedData  = errors.New("nested data is not rectangular")
	ErrBadDocument = errors.New("invalid array document")
)

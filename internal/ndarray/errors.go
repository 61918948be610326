package ndarray

import "errors"

// Engine errors. Callers branch on them with errors.Is.
var (
	ErrInvalidShape     = errors.New("invalid shape")
	ErrRankMismatch     = errors.New("rank mismatch")
	ErrOutOfRange       = errors.New("index out of range")
	ErrUnsupportedDType = errors.New("unsupported data type")
	ErrDTypeMismatch    = errors.New("data type mismatch")
	ErrReleased         = errors.New("array already released")
)

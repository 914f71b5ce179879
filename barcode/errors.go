package barcode

import "github.com/cockroachdb/errors"

var (
	// ErrMalformed indicates rows or documents that do not describe a barcode.
	ErrMalformed = errors.New("barcode: malformed input")
)

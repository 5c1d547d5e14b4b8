package extractor

import "errors"

// Error definitions for extractor package.
var (
	ErrReadFile     = errors.New("failed to read file")
	ErrMalformedXML = errors.New("malformed XML")
)

package xmledit

import "errors"

// Error definitions for xmledit package.
var (
	ErrReadFile     = errors.New("failed to read file")
	ErrWriteFile    = errors.New("failed to write file")
	ErrMalformedXML = errors.New("malformed XML")
)

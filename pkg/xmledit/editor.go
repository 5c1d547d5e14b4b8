// Package xmledit removes XML elements from files without reformatting the rest of the document.
package xmledit

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/lerenn/aster/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=editor.go -destination=mocks/editor.gen.go -package=mocks

// ElementLocation is the 1-based inclusive line span of an element.
type ElementLocation struct {
	StartLine int
	EndLine   int
}

// Editor locates and removes elements in XML files.
type Editor interface {
	// FindElement returns the line span of the first element matching m, or nil if none does.
	FindElement(content []byte, m *ElementMatcher) (*ElementLocation, error)
	// RemoveElement deletes the lines of the first element matching m from the file at path.
	// It reports false and leaves the file untouched when no element matches.
	RemoveElement(path string, m *ElementMatcher) (bool, error)
}

type scanState int

const (
	scanning scanState = iota
	insideMatch
)

type realEditor struct {
	fs fs.FS
}

// NewEditor creates an Editor working through fsys.
func NewEditor(fsys fs.FS) Editor {
	return &realEditor{fs: fsys}
}

// FindElement streams content and tracks element nesting to find where the first
// matching element starts and where its own end tag closes.
func (e *realEditor) FindElement(content []byte, m *ElementMatcher) (*ElementLocation, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))

	state := scanning
	depth, matchDepth, startLine := 0, 0, 0

	for {
		// The decoder stands on the first byte of the next token
		line, _ := decoder.InputPos()

		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedXML, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if state == scanning && m.Matches(t) {
				state = insideMatch
				matchDepth = depth
				startLine = line
			}
		case xml.EndElement:
			if state == insideMatch && depth == matchDepth {
				// The decoder now stands right after the closing '>' or "/>"
				endLine, _ := decoder.InputPos()
				return &ElementLocation{StartLine: startLine, EndLine: endLine}, nil
			}
			depth--
		}
	}
}

// RemoveElement rewrites the file without the lines of the first matching element.
// Every other line is copied verbatim with its own terminator.
func (e *realEditor) RemoveElement(path string, m *ElementMatcher) (bool, error) {
	info, err := e.fs.Stat(path)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
	}

	content, err := e.fs.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
	}

	location, err := e.FindElement(content, m)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	if location == nil {
		return false, nil
	}

	if err := e.fs.WriteFileAtomic(path, excise(content, location), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrWriteFile, path, err)
	}

	return true, nil
}

// excise drops the lines of content covered by location.
func excise(content []byte, location *ElementLocation) []byte {
	out := make([]byte, 0, len(content))
	for i, line := range bytes.SplitAfter(content, []byte("\n")) {
		lineNumber := i + 1
		if lineNumber >= location.StartLine && lineNumber <= location.EndLine {
			continue
		}
		out = append(out, line...)
	}
	return out
}

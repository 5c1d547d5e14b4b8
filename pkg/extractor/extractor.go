// Package extractor turns scanned files into records of declared and referenced string identifiers.
package extractor

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/lerenn/aster/pkg/fs"
	"github.com/lerenn/aster/pkg/index"
)

// File name patterns for each walked root.
var (
	// ResourcePatterns selects resource files under the resource root.
	ResourcePatterns = []string{"*.xml"}
	// SourcePatterns selects source files under the source root.
	SourcePatterns = []string{"*.java", "*.kt"}
	// ManifestPatterns selects manifest files under the manifest root.
	ManifestPatterns = []string{"AndroidManifest.xml"}
)

const (
	stringElement = "string"
	nameAttribute = "name"
	usageMarker   = "@string/"
)

// identifierClass matches a run of Unicode word characters, \w only covers ASCII.
const identifierClass = `[\p{L}\p{M}\p{Nd}\p{Pc}]+`

var (
	xmlUsagePattern    = regexp.MustCompile(`@string/(` + identifierClass + `)`)
	sourceUsagePattern = regexp.MustCompile(`R\.string\.(` + identifierClass + `)`)
)

// Extractor extracts declaration and usage facts from files.
// Implementations hold no mutable state and are safe for concurrent use.
type Extractor interface {
	// ExtractXML extracts declarations and usages from a resource or manifest file.
	ExtractXML(path string) (index.FileRecord, error)
	// ExtractSource extracts usages from a source file.
	ExtractSource(path string) (index.FileRecord, error)
}

type realExtractor struct {
	fs fs.FS
}

// New creates an Extractor reading files through fsys.
func New(fsys fs.FS) Extractor {
	return &realExtractor{fs: fsys}
}

// ExtractXML streams the file through the XML tokenizer.
// A string element with a name attribute is a declaration; every @string/<id> found in
// attribute values or character data is a usage.
func (e *realExtractor) ExtractXML(path string) (index.FileRecord, error) {
	data, err := e.fs.ReadFile(path)
	if err != nil {
		return index.FileRecord{}, fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
	}

	record := index.FileRecord{Path: path}
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return index.FileRecord{}, fmt.Errorf("%w: %s: %w", ErrMalformedXML, path, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			for _, attr := range t.Attr {
				record.Referenced = appendUsages(record.Referenced, attr.Value)
				if t.Name.Local == stringElement && attr.Name.Local == nameAttribute {
					record.Declared = append(record.Declared, attr.Value)
				}
			}
		case xml.CharData:
			// Text and CDATA sections are both delivered as character data
			record.Referenced = appendUsages(record.Referenced, string(t))
		}
	}

	return record, nil
}

// ExtractSource searches the file for R.string.<id> accesses.
func (e *realExtractor) ExtractSource(path string) (index.FileRecord, error) {
	data, err := e.fs.ReadFile(path)
	if err != nil {
		return index.FileRecord{}, fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
	}

	record := index.FileRecord{Path: path}
	for _, line := range bytes.Split(data, []byte("\n")) {
		for _, match := range sourceUsagePattern.FindAllSubmatch(line, -1) {
			record.Referenced = append(record.Referenced, string(match[1]))
		}
	}

	return record, nil
}

func appendUsages(usages []string, value string) []string {
	if !strings.Contains(value, usageMarker) {
		return usages
	}
	for _, match := range xmlUsagePattern.FindAllStringSubmatch(value, -1) {
		usages = append(usages, match[1])
	}
	return usages
}

package pdfparser

import (
	"fmt"
	"strings"
)

// Engine names accepted by NewExtractor.
const (
	EngineLibrary   = "library"
	EnginePdftotext = "pdftotext"
)

// PDFExtractor turns a PDF file into a single text blob. Implementations
// append every page that yields text, in page order, each followed by a
// newline, and silently skip pages that yield nothing. A document that cannot
// be opened is reported as *parsererror.SourceOpenError.
type PDFExtractor interface {
	ExtractText(pdfPath string) (string, error)
}

// NewExtractor returns the extractor for the named engine.
func NewExtractor(engine string) (PDFExtractor, error) {
	switch strings.ToLower(engine) {
	case "", EngineLibrary:
		return NewLibraryExtractor(), nil
	case EnginePdftotext:
		return NewPdftotextExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown PDF engine %q (expected %q or %q)", engine, EngineLibrary, EnginePdftotext)
	}
}

// MockPDFExtractor returns fixed text or a fixed error. Used in tests.
type MockPDFExtractor struct {
	MockText string
	MockErr  error
	Calls    []string
}

// NewMockPDFExtractor creates a MockPDFExtractor.
func NewMockPDFExtractor(mockText string, mockErr error) *MockPDFExtractor {
	return &MockPDFExtractor{MockText: mockText, MockErr: mockErr}
}

// ExtractText records the call and returns the configured result.
func (e *MockPDFExtractor) ExtractText(pdfPath string) (string, error) {
	e.Calls = append(e.Calls, pdfPath)
	if e.MockErr != nil {
		return "", e.MockErr
	}
	return e.MockText, nil
}

// JoinPages concatenates page texts into one blob: every page with
// non-blank text is written followed by "\n"; blank pages contribute nothing.
func JoinPages(pages []string) string {
	var b strings.Builder
	for _, page := range pages {
		if strings.TrimSpace(page) == "" {
			continue
		}
		b.WriteString(page)
		b.WriteByte('\n')
	}
	return b.String()
}

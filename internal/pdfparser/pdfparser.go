// Package pdfparser extracts the plain text of PDF statements.
package pdfparser

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"fjacquet/ccstmt-csv/internal/parsererror"

	"github.com/ledongthuc/pdf"
)

// LibraryExtractor reads PDFs with the pure-Go ledongthuc/pdf reader.
type LibraryExtractor struct{}

// NewLibraryExtractor creates a LibraryExtractor.
func NewLibraryExtractor() *LibraryExtractor {
	return &LibraryExtractor{}
}

// ExtractText implements PDFExtractor. A document without pages yields "".
func (e *LibraryExtractor) ExtractText(pdfPath string) (string, error) {
	f, r, err := openPDF(pdfPath)
	if err != nil {
		return "", &parsererror.SourceOpenError{FilePath: pdfPath, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		pages = append(pages, pageText(r, i))
	}
	return JoinPages(pages), nil
}

// openPDF guards against the reader panicking on malformed input.
func openPDF(pdfPath string) (f *os.File, r *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("PDF reader crashed: %v", rec)
		}
	}()

	return pdf.Open(pdfPath)
}

// pageText returns "" for pages that are missing, fail to decode or panic.
func pageText(r *pdf.Reader, num int) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
		}
	}()

	p := r.Page(num)
	if p.V.IsNull() {
		return ""
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}

// PdftotextExtractor shells out to poppler's pdftotext.
type PdftotextExtractor struct {
	// Binary defaults to "pdftotext" looked up on PATH.
	Binary string
}

// NewPdftotextExtractor creates a PdftotextExtractor.
func NewPdftotextExtractor() *PdftotextExtractor {
	return &PdftotextExtractor{Binary: "pdftotext"}
}

// ExtractText implements PDFExtractor. pdftotext separates pages with a form
// feed; each page is trimmed of trailing line breaks before joining.
func (e *PdftotextExtractor) ExtractText(pdfPath string) (string, error) {
	bin, err := exec.LookPath(e.Binary)
	if err != nil {
		return "", &parsererror.SourceOpenError{FilePath: pdfPath, Err: fmt.Errorf("pdftotext not available: %w", err)}
	}

	// #nosec G204 -- binary is configuration, path is the user's input file
	out, err := exec.Command(bin, "-layout", pdfPath, "-").Output()
	if err != nil {
		return "", &parsererror.SourceOpenError{FilePath: pdfPath, Err: fmt.Errorf("error running pdftotext: %w", err)}
	}

	pages := strings.Split(string(out), "\f")
	for i := range pages {
		pages[i] = strings.TrimRight(pages[i], "\r\n")
	}
	return JoinPages(pages), nil
}

package mxfile

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/tsawler/graphia/format"
	"github.com/tsawler/graphia/model"
)

// Sentinel errors for the two whole-request failure modes. Page-local
// failures never surface here; they degrade the page and are reported as
// issues.
var (
	// ErrSourceUnavailable indicates the diagram source could not be read.
	ErrSourceUnavailable = errors.New("diagram source unavailable")
	// ErrMalformed indicates the top-level document is not well-formed.
	ErrMalformed = errors.New("malformed diagram document")
)

// PageIssue records a page-local failure that degraded one page's
// contribution to zero cells. The reason is kept for diagnostics.
type PageIssue struct {
	Page   string // Page name
	Reason error
}

// Reader provides access to a parsed draw.io document. All parsing happens
// in Open; the resulting document is immutable and a Reader is safe for
// concurrent use.
type Reader struct {
	doc    *model.Document
	issues []PageIssue
}

// Open opens a draw.io file for reading. PNG exports with an embedded
// document are handled transparently.
func Open(filename string) (*Reader, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return OpenBytes(data)
}

// OpenReader parses a draw.io document from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return OpenBytes(data)
}

// OpenBytes parses a draw.io document held in memory.
func OpenBytes(data []byte) (*Reader, error) {
	if format.DetectFromMagic(data) == format.PNG {
		embedded, err := embeddedDocument(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		data = []byte(embedded)
	}

	var mx mxfileXML
	if err := decodeDocument(data, &mx); err != nil {
		// Legacy single-page files carry a bare <mxGraphModel> root.
		var gm graphModelXML
		if err2 := decodeDocument(data, &gm); err2 != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		r := &Reader{doc: model.NewDocument()}
		r.doc.AddPage(model.NewPage("", gm.Root.cells()))
		return r, nil
	}

	r := &Reader{doc: model.NewDocument()}
	r.doc.Metadata = model.Metadata{
		Host:     mx.Host,
		Modified: mx.Modified,
		Agent:    mx.Agent,
		Version:  mx.Version,
	}
	for _, d := range mx.Diagrams {
		r.doc.AddPage(r.buildPage(d))
	}
	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close; the document lives in memory.
	return nil
}

// buildPage converts one <diagram> element into a page. A page already
// holding an inline shape tree is never decompressed, even if it also
// carries stray text; decompression is only attempted when there is no
// inline tree and the raw text is non-empty. Recovery failures degrade the
// page to zero cells rather than aborting the document.
func (r *Reader) buildPage(d diagramXML) *model.Page {
	if d.Model != nil {
		return model.NewPage(d.Name, d.Model.Root.cells())
	}

	payload := strings.TrimSpace(d.Content)
	if payload == "" {
		return model.NewPage(d.Name, nil)
	}

	fragment, err := Decompress(payload)
	if err != nil {
		r.issues = append(r.issues, PageIssue{Page: d.Name, Reason: err})
		return model.NewPage(d.Name, nil)
	}

	var gm graphModelXML
	if err := decodeDocument([]byte(fragment), &gm); err != nil {
		r.issues = append(r.issues, PageIssue{
			Page:   d.Name,
			Reason: fmt.Errorf("decompressed payload is not well-formed: %w", err),
		})
		return model.NewPage(d.Name, nil)
	}
	return model.NewPage(d.Name, gm.Root.cells())
}

// decodeDocument unmarshals XML with charset support, so documents whose
// prolog declares a legacy encoding still parse.
func decodeDocument(data []byte, v interface{}) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	return dec.Decode(v)
}

// Document returns the parsed document.
func (r *Reader) Document() *model.Document {
	return r.doc
}

// Metadata returns document-level metadata from the mxfile element.
func (r *Reader) Metadata() model.Metadata {
	return r.doc.Metadata
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() (int, error) {
	return r.doc.PageCount(), nil
}

// PageNames returns the page names in document order.
func (r *Reader) PageNames() []string {
	return r.doc.PageNames()
}

// Issues returns the page-local failures recorded while parsing, in page
// order. An empty slice means every page parsed cleanly.
func (r *Reader) Issues() []PageIssue {
	return r.issues
}

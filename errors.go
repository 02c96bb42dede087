package graphia

import (
	"errors"

	"github.com/tsawler/graphia/mxfile"
)

// Sentinel errors returned by terminal operations. Test with errors.Is;
// the returned errors wrap these with source and operation context.
var (
	// ErrSourceUnavailable indicates the diagram source could not be read
	// (missing file, unreadable stream).
	ErrSourceUnavailable = mxfile.ErrSourceUnavailable

	// ErrDocumentMalformed indicates the top-level document is not a
	// well-formed draw.io document.
	ErrDocumentMalformed = mxfile.ErrMalformed

	// ErrPageNotFound indicates a page-name filter named a page the
	// document does not contain. Distinct from a page with zero cells,
	// which is a valid empty result.
	ErrPageNotFound = errors.New("page not found")

	// ErrUnknownOperation indicates a Request named an operation the
	// dispatch layer does not implement.
	ErrUnknownOperation = errors.New("unknown operation")
)

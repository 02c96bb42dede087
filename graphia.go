// Package graphia provides a fluent API for extracting structure from
// draw.io diagram files: pages, shapes, containment hierarchy, and typed
// connections.
//
// Basic usage:
//
//	overview, warnings, err := graphia.Open("architecture.drawio").Overview()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", graphia.FormatWarnings(warnings))
//	}
//
// With options:
//
//	rels, _, err := graphia.Open("architecture.drawio").
//	    Page("Backend").
//	    MaxResults(50).
//	    Relationships()
//
// For advanced use cases, the lower-level mxfile package is also available.
package graphia

import (
	"github.com/tsawler/graphia/mxfile"
)

// Open opens a draw.io file and returns an Extractor for fluent
// configuration. Compressed pages and PNG exports with an embedded diagram
// are handled transparently. The returned Extractor must be closed when
// done, either explicitly via Close() or implicitly when calling a terminal
// operation like Overview().
//
// Example:
//
//	overview, warnings, err := graphia.Open("diagram.drawio").Overview()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened mxfile.Reader.
// This is useful when the document bytes come from somewhere other than
// the filesystem. Note: The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := mxfile.OpenBytes(data)
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	overview, warnings, err := graphia.FromReader(r).Overview()
func FromReader(r *mxfile.Reader) *Extractor {
	return &Extractor{
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := graphia.Must(graphia.Open("diagram.drawio").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a call to a terminal operation
// returning (T, []Warning, error) and panics if the error is non-nil.
// It discards warnings and returns just the value.
//
// Example:
//
//	overview := graphia.MustResult(graphia.Open("diagram.drawio").Overview())
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

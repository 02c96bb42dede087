package graphia

import (
	"fmt"
	"strings"
)

// Warning codes returned alongside results.
const (
	// WarnPageDecompression indicates a page's compressed payload could not
	// be decoded; the page contributed zero cells.
	WarnPageDecompression = "page_decompression"

	// WarnImageDecode indicates an embedded image's data could not be
	// decoded; the image was skipped.
	WarnImageDecode = "image_decode"

	// WarnOCR indicates text recognition failed for one embedded image.
	WarnOCR = "ocr"
)

// Warning represents a non-fatal issue encountered during extraction.
// The operation succeeded, but part of the document degraded to an empty
// contribution.
type Warning struct {
	Code    string // Machine-readable warning code
	Message string // Human-readable description
}

// String returns a human-readable representation of the warning.
func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s", w.Code, w.Message)
}

// FormatWarnings formats a slice of warnings as a single string, one
// warning per line. Returns an empty string for an empty slice.
//
// Example:
//
//	overview, warnings, err := graphia.Open("diagram.drawio").Overview()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:\n" + graphia.FormatWarnings(warnings))
//	}
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

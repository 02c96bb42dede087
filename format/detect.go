// Package format provides source format detection for the graphia library.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported diagram source format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// XML indicates a plain draw.io XML document.
	XML
	// PNG indicates a PNG export with the document embedded in a tEXt chunk.
	PNG
)

// pngSignature is the fixed 8-byte PNG file header.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case XML:
		return "XML"
	case PNG:
		return "PNG"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case XML:
		return ".drawio"
	case PNG:
		return ".png"
	default:
		return ""
	}
}

// Detect determines source format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".drawio", ".xml":
		return XML
	case ".png":
		return PNG
	default:
		return Unknown
	}
}

// DetectFromMagic inspects leading bytes to determine format. This is more
// reliable than extension-based detection: exported diagrams are routinely
// renamed, and a ".png" may turn out to be a plain XML file or vice versa.
func DetectFromMagic(data []byte) Format {
	if bytes.HasPrefix(data, pngSignature) {
		return PNG
	}

	// Skip a UTF-8 BOM and leading whitespace before sniffing XML.
	trimmed := bytes.TrimLeft(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}), " \t\r\n")
	switch {
	case bytes.HasPrefix(trimmed, []byte("<?xml")),
		bytes.HasPrefix(trimmed, []byte("<mxfile")),
		bytes.HasPrefix(trimmed, []byte("<mxGraphModel")):
		return XML
	}

	return Unknown
}

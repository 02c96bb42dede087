package mxfile

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"fmt"
	"io"
	"net/url"
	"strings"
	"unicode"
)

// Decompress reverses the draw.io page payload pipeline: base64 decode,
// raw-DEFLATE inflate (the payload carries no zlib or gzip header), then
// percent-decode the inflated bytes as UTF-8 text. The result is the XML
// fragment of the page's shape tree.
//
// Any step's failure returns an error describing which stage broke; the
// caller's policy is to degrade — a page whose payload cannot be recovered
// contributes zero cells — but the reason is retained for diagnostics.
func Decompress(payload string) (string, error) {
	// Editors wrap long payloads across lines; base64 decoding rejects
	// interior whitespace, so strip it first.
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, payload)

	compressed, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return "", fmt.Errorf("base64 decode: %w", err)
	}

	fr := flate.NewReader(bytes.NewReader(compressed))
	defer fr.Close()

	inflated, err := io.ReadAll(fr)
	if err != nil {
		return "", fmt.Errorf("inflate: %w", err)
	}

	// draw.io percent-encodes with encodeURIComponent, which leaves '+'
	// literal — PathUnescape matches that; QueryUnescape would not.
	decoded, err := url.PathUnescape(string(inflated))
	if err != nil {
		return "", fmt.Errorf("percent-decode: %w", err)
	}

	return decoded, nil
}

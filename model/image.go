package model

import (
	"bytes"
	"encoding/base64"
	"image"
	"strings"

	// Registered for image.DecodeConfig so embedded payloads in any of the
	// formats draw.io accepts report their dimensions.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ImageInfo describes an image embedded in a cell's style via a data URI.
type ImageInfo struct {
	Format string // png, jpeg, gif, webp, bmp
	Width  int    // Pixel width
	Height int    // Pixel height
	Data   []byte // Decoded payload
}

// EmbeddedImage extracts and probes the data-URI image payload from a
// style descriptor, if any. It returns nil when the style carries no
// embedded image or the payload cannot be decoded — icon shapes referencing
// external URLs fall in the former bucket and are not an error.
func EmbeddedImage(style string) *ImageInfo {
	payload := embeddedImagePayload(style)
	if payload == "" {
		return nil
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// draw.io sometimes strips base64 padding.
		data, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return nil
		}
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil
	}

	return &ImageInfo{
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
		Data:   data,
	}
}

// embeddedImagePayload pulls the base64 payload out of an image=data:...
// style token. Style tokens are semicolon-separated, but the data URI
// itself may contain a ";base64," marker that must not terminate the token.
func embeddedImagePayload(style string) string {
	idx := strings.Index(style, "image=data:")
	if idx < 0 {
		return ""
	}
	rest := style[idx+len("image=data:"):]

	// The payload starts after the first comma (data:<mime>[;base64],<payload>).
	comma := strings.IndexByte(rest, ',')
	if comma < 0 {
		return ""
	}
	payload := rest[comma+1:]

	// Trim any trailing style tokens.
	if semi := strings.IndexByte(payload, ';'); semi >= 0 {
		payload = payload[:semi]
	}
	return payload
}

package mxfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"net/url"
)

// embeddedKeyword is the tEXt chunk keyword draw.io uses for PNG exports.
const embeddedKeyword = "mxfile"

// pngHeaderLen is the length of the fixed PNG signature.
const pngHeaderLen = 8

// embeddedDocument extracts the diagram document from a draw.io PNG
// export. The editor writes the complete percent-encoded <mxfile> XML into
// a tEXt chunk keyed "mxfile"; walking the chunk list is enough, no pixel
// decoding is involved.
func embeddedDocument(data []byte) (string, error) {
	off := pngHeaderLen
	for off+8 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[off : off+4]))
		ctype := string(data[off+4 : off+8])
		start := off + 8
		end := start + length
		if length < 0 || end+4 > len(data) {
			return "", errors.New("truncated PNG chunk")
		}

		if ctype == "tEXt" {
			chunk := data[start:end]
			if nul := bytes.IndexByte(chunk, 0); nul >= 0 && string(chunk[:nul]) == embeddedKeyword {
				decoded, err := url.PathUnescape(string(chunk[nul+1:]))
				if err != nil {
					return "", fmt.Errorf("embedded document percent-decode: %w", err)
				}
				return decoded, nil
			}
		}
		if ctype == "IEND" {
			break
		}

		off = end + 4 // skip CRC
	}
	return "", errors.New("no embedded diagram document in PNG")
}

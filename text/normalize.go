// Package text resolves raw cell values into plain display text.
//
// draw.io labels are frequently HTML fragments: entity-encoded, wrapped in
// formatting tags, and padded with layout whitespace. Plain performs the
// full resolution (entity decode, tag strip, whitespace collapse, NFC
// normalization) that consumers of display text need, while leaving raw
// values untouched for callers that want them.
package text

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Plain resolves a raw, possibly HTML-encoded value to plain text:
// entities decoded, tags stripped, whitespace collapsed to single spaces,
// and the result NFC-normalized. Plain is a pure function; it never fails,
// returning a best-effort collapse of the input on unparseable markup.
func Plain(raw string) string {
	if raw == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return collapse(raw)
	}

	var sb strings.Builder
	writeText(doc, &sb)
	return collapse(norm.NFC.String(sb.String()))
}

// writeText walks the parsed fragment collecting text nodes. Non-content
// subtrees are skipped; explicit breaks become whitespace so adjacent
// lines do not fuse into one word.
func writeText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "template":
			return
		case "br", "hr":
			sb.WriteString(" ")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(c, sb)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "tr":
			sb.WriteString(" ")
		}
	}
}

// collapse reduces all runs of whitespace to single spaces and trims.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

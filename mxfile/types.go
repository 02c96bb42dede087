// Package mxfile provides draw.io document parsing.
package mxfile

import (
	"encoding/xml"
	"io"
)

// mxfileXML represents the <mxfile> root element of a draw.io document.
type mxfileXML struct {
	XMLName  xml.Name     `xml:"mxfile"`
	Host     string       `xml:"host,attr"`
	Modified string       `xml:"modified,attr"`
	Agent    string       `xml:"agent,attr"`
	Version  string       `xml:"version,attr"`
	Diagrams []diagramXML `xml:"diagram"`
}

// diagramXML represents one <diagram> page. A page holds either an inline
// <mxGraphModel> shape tree or an opaque compressed payload as character
// data — never both meaningfully; an inline tree always wins.
type diagramXML struct {
	Name    string         `xml:"name,attr"`
	ID      string         `xml:"id,attr"`
	Content string         `xml:",chardata"`
	Model   *graphModelXML `xml:"mxGraphModel"`
}

// graphModelXML represents an <mxGraphModel> shape tree.
type graphModelXML struct {
	XMLName xml.Name `xml:"mxGraphModel"`
	Root    rootXML  `xml:"root"`
}

// rootXML holds the ordered cell records of one page. The shape tree mixes
// two element kinds — direct <mxCell> records and wrapped <object> /
// <UserObject> records — and encounter order across both kinds is an
// observable contract, so unmarshalling walks the token stream by hand
// instead of letting encoding/xml split the kinds into separate slices.
type rootXML struct {
	Entries []entryXML
}

// entryXML is one child of <root>: exactly one of Cell or Object is set.
type entryXML struct {
	Cell   *cellXML
	Object *objectXML
}

// cellXML represents a direct <mxCell> record.
type cellXML struct {
	ID     string `xml:"id,attr"`
	Value  string `xml:"value,attr"`
	Style  string `xml:"style,attr"`
	Parent string `xml:"parent,attr"`
	Edge   string `xml:"edge,attr"`
	Vertex string `xml:"vertex,attr"`
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

// objectXML represents a wrapped <object> or <UserObject> record: a label
// and custom-attribute container nesting exactly one direct cell that
// supplies the structural attributes.
type objectXML struct {
	ID     string   `xml:"id,attr"`
	Label  string   `xml:"label,attr"`
	Value  string   `xml:"value,attr"`
	Style  string   `xml:"style,attr"`
	Parent string   `xml:"parent,attr"`
	Link   string   `xml:"link,attr"`
	Cell   *cellXML `xml:"mxCell"`
}

// UnmarshalXML decodes the children of <root> preserving document order.
func (r *rootXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "mxCell":
				var c cellXML
				if err := d.DecodeElement(&c, &t); err != nil {
					return err
				}
				r.Entries = append(r.Entries, entryXML{Cell: &c})
			case "object", "UserObject":
				var o objectXML
				if err := d.DecodeElement(&o, &t); err != nil {
					return err
				}
				r.Entries = append(r.Entries, entryXML{Object: &o})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

package model

// Document represents a complete draw.io file with extracted structure.
type Document struct {
	Metadata Metadata
	Pages    []*Page
}

// Metadata contains document-level information from the mxfile element.
type Metadata struct {
	Host     string // Application host that wrote the file
	Modified string // Last-modified timestamp, as written
	Agent    string // User agent string
	Version  string // Editor version
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage appends a page to the document and assigns its number.
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// PageCount returns the total number of pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// PageNames returns the page names in document order.
func (d *Document) PageNames() []string {
	names := make([]string, len(d.Pages))
	for i, p := range d.Pages {
		names[i] = p.Name
	}
	return names
}

// PageByName returns the first page with the given name, or nil.
func (d *Document) PageByName(name string) *Page {
	for _, p := range d.Pages {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// CellCount returns the total number of cells across all pages.
func (d *Document) CellCount() int {
	total := 0
	for _, p := range d.Pages {
		total += p.CellCount()
	}
	return total
}

// EdgeCount returns the total number of connector cells across all pages.
func (d *Document) EdgeCount() int {
	total := 0
	for _, p := range d.Pages {
		total += p.EdgeCount()
	}
	return total
}

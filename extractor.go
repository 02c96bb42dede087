package graphia

import (
	"fmt"
	"strings"

	"github.com/tsawler/graphia/classify"
	"github.com/tsawler/graphia/model"
	"github.com/tsawler/graphia/mxfile"
	"github.com/tsawler/graphia/ocr"
)

// Extractor provides a fluent interface for extracting structure from
// draw.io diagram files. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string

	// Reader
	reader *mxfile.Reader

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	newExt := &Extractor{
		filename:     e.filename,
		reader:       e.reader,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		options:      e.options.clone(),
		err:          e.err,
		warnings:     append([]Warning(nil), e.warnings...),
	}
	return newExt
}

// ensureReader opens the reader if not already open and records any
// page-local parse issues as warnings.
func (e *Extractor) ensureReader() error {
	if e.readerOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("%w: no filename specified", ErrSourceUnavailable)
	}

	r, err := mxfile.Open(e.filename)
	if err != nil {
		return fmt.Errorf("opening %s: %w", e.filename, err)
	}
	e.reader = r
	e.ownsReader = true
	e.readerOpened = true

	for _, issue := range r.Issues() {
		name := issue.Page
		if name == "" {
			name = "Unnamed"
		}
		e.warnings = append(e.warnings, Warning{
			Code:    WarnPageDecompression,
			Message: fmt.Sprintf("page %q: %v", name, issue.Reason),
		})
	}
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsReader && e.reader != nil {
		err := e.reader.Close()
		e.reader = nil
		e.ownsReader = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Page restricts page-filterable operations to the named page. A filter
// naming a page the document does not contain fails with ErrPageNotFound.
//
// Example:
//
//	comps, _, err := graphia.Open("diagram.drawio").Page("Backend").Components()
func (e *Extractor) Page(name string) *Extractor {
	newExt := e.clone()
	newExt.options.page = name
	newExt.options.pageSet = true
	return newExt
}

// MaxResults caps the number of entries returned by listing operations.
// Results cut short by the cap carry an explicit truncation marker.
// A cap of 0 (the default) means unlimited.
//
// Example:
//
//	rels, _, err := graphia.Open("diagram.drawio").MaxResults(50).Relationships()
func (e *Extractor) MaxResults(n int) *Extractor {
	newExt := e.clone()
	newExt.options.maxResults = n
	return newExt
}

// Language sets the OCR language used by ImageText. The default is the
// recognition engine's default (English).
//
// Example:
//
//	texts, _, err := graphia.Open("diagram.drawio").Language("deu").ImageText()
func (e *Extractor) Language(lang string) *Extractor {
	newExt := e.clone()
	newExt.options.ocrLanguage = lang
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Overview summarizes the whole document: page count and names, cell and
// connection totals, swimlane/decision/image counts, and the hyperlink
// inventory. This is a terminal operation that closes the underlying reader.
//
// Returns the overview, any warnings encountered during processing, and an
// error if extraction failed. Warnings indicate non-fatal issues (e.g., a
// page whose payload could not be decompressed) where extraction succeeded
// but results may be incomplete.
//
// Example:
//
//	overview, warnings, err := graphia.Open("diagram.drawio").Overview()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", graphia.FormatWarnings(warnings))
//	}
func (e *Extractor) Overview() (Overview, []Warning, error) {
	if e.err != nil {
		return Overview{}, nil, e.err
	}

	if err := e.ensureReader(); err != nil {
		return Overview{}, nil, err
	}
	defer e.Close()

	doc := e.reader.Document()
	ov := Overview{
		TotalPages: doc.PageCount(),
		PageNames:  doc.PageNames(),
	}

	for _, page := range doc.Pages {
		ov.TotalCells += page.CellCount()
		ov.TotalConnections += page.EdgeCount()

		for _, node := range page.Nodes {
			if node.HasText() {
				ov.LabeledCells++
			}
			if !node.Edge {
				switch classify.ShapeOf(node.Style) {
				case classify.ShapeSwimlane:
					ov.Swimlanes++
				case classify.ShapeDecision:
					ov.Decisions++
				}
			}
			if strings.Contains(node.Style, "image=data:") {
				ov.Images++
			}
			if node.Link != "" {
				ov.Hyperlinks = append(ov.Hyperlinks, HyperlinkEntry{
					Page:   pageName(page),
					ID:     node.ID,
					Text:   truncateText(node.Text(), hyperlinkTextLimit),
					Target: node.Link,
				})
			}
		}
	}

	return ov, e.warnings, nil
}

// Components lists all non-edge cells with non-empty resolved text, grouped
// by page in encounter order, each annotated with its shape type and
// hyperlink presence. Honors the Page filter and MaxResults cap; a capped
// listing carries an explicit Truncated marker.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	comps, warnings, err := graphia.Open("diagram.drawio").
//	    Page("Backend").
//	    MaxResults(100).
//	    Components()
func (e *Extractor) Components() (ComponentList, []Warning, error) {
	if e.err != nil {
		return ComponentList{}, nil, e.err
	}

	if err := e.ensureReader(); err != nil {
		return ComponentList{}, nil, err
	}
	defer e.Close()

	pages, err := e.selectPages()
	if err != nil {
		return ComponentList{}, nil, err
	}

	var list ComponentList
	for _, page := range pages {
		for _, node := range page.Nodes {
			if node.Edge || !node.HasText() {
				continue
			}
			if e.capped(len(list.Components)) {
				list.Truncated = true
				return list, e.warnings, nil
			}
			list.Components = append(list.Components, Component{
				Page:         pageName(page),
				ID:           node.ID,
				Text:         node.Text(),
				Shape:        classify.ShapeOf(node.Style),
				HasHyperlink: node.Link != "",
			})
		}
	}

	return list, e.warnings, nil
}

// TextInventory lists every cell with non-empty resolved text, edges
// included and marked, grouped by page in encounter order. Honors the Page
// filter and MaxResults cap.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	entries, warnings, err := graphia.Open("diagram.drawio").TextInventory()
func (e *Extractor) TextInventory() ([]TextEntry, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	pages, err := e.selectPages()
	if err != nil {
		return nil, nil, err
	}

	var entries []TextEntry
	for _, page := range pages {
		for _, node := range page.Nodes {
			text := node.Text()
			if text == "" {
				continue
			}
			if e.capped(len(entries)) {
				return entries, e.warnings, nil
			}
			entries = append(entries, TextEntry{
				Page:   pageName(page),
				ID:     node.ID,
				Text:   text,
				IsEdge: node.Edge,
			})
		}
	}

	return entries, e.warnings, nil
}

// Containers lists class-like grouping cells: those whose style classifies
// as a swimlane or process shape, with resolved name and owning page.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	containers, warnings, err := graphia.Open("diagram.drawio").Containers()
func (e *Extractor) Containers() ([]Container, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	var containers []Container
	for _, page := range e.reader.Document().Pages {
		for _, node := range page.Nodes {
			if node.Edge {
				continue
			}
			shape := classify.ShapeOf(node.Style)
			if shape != classify.ShapeSwimlane && shape != classify.ShapeProcess {
				continue
			}
			name := node.Text()
			if name == "" {
				name = node.ID
			}
			containers = append(containers, Container{
				Page:  pageName(page),
				ID:    node.ID,
				Name:  name,
				Shape: shape,
			})
		}
	}

	return containers, e.warnings, nil
}

// Relationships lists every edge with both endpoints resolved to the
// referenced node's text (falling back to the raw id when the reference is
// dangling or the node is unlabeled), the edge's own label, and its
// classified relationship type. Honors the Page filter and MaxResults cap.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	rels, warnings, err := graphia.Open("diagram.drawio").Relationships()
//	for _, rel := range rels.Relationships {
//	    fmt.Printf("%s -[%s]-> %s\n", rel.Source, rel.Type, rel.Target)
//	}
func (e *Extractor) Relationships() (RelationshipList, []Warning, error) {
	if e.err != nil {
		return RelationshipList{}, nil, e.err
	}

	if err := e.ensureReader(); err != nil {
		return RelationshipList{}, nil, err
	}
	defer e.Close()

	pages, err := e.selectPages()
	if err != nil {
		return RelationshipList{}, nil, err
	}

	var list RelationshipList
	for _, page := range pages {
		for _, node := range page.Nodes {
			if !node.Edge {
				continue
			}
			if e.capped(len(list.Relationships)) {
				list.Truncated = true
				return list, e.warnings, nil
			}
			list.Relationships = append(list.Relationships, Relationship{
				Page:   pageName(page),
				ID:     node.ID,
				Source: page.ResolveName(node.SourceID),
				Target: page.ResolveName(node.TargetID),
				Label:  node.Text(),
				Type:   classify.RelationOf(node.Style),
			})
		}
	}

	return list, e.warnings, nil
}

// Hierarchy renders each page's full structure: top-level non-edge nodes
// depth-first with children before sibling edge arrows, a flattened edge
// section resolving endpoints as in Relationships, and a separate orphan
// section for floating annotations. A page rendered from a compressed
// payload produces output identical to the same content supplied inline.
// Honors the Page filter. This is a terminal operation that closes the
// underlying reader.
//
// Example:
//
//	pages, warnings, err := graphia.Open("diagram.drawio").Hierarchy()
func (e *Extractor) Hierarchy() ([]HierarchyPage, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	pages, err := e.selectPages()
	if err != nil {
		return nil, nil, err
	}

	rendered := make([]HierarchyPage, 0, len(pages))
	for _, page := range pages {
		rendered = append(rendered, renderPage(page))
	}

	return rendered, e.warnings, nil
}

// Images lists the embedded raster images found in cell styles, with their
// decoded format and pixel dimensions. Images whose payload cannot be
// decoded are skipped with a warning. Honors the Page filter.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	images, warnings, err := graphia.Open("diagram.drawio").Images()
func (e *Extractor) Images() ([]ImageEntry, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	pages, err := e.selectPages()
	if err != nil {
		return nil, nil, err
	}

	var images []ImageEntry
	for _, page := range pages {
		for _, node := range page.Nodes {
			if !strings.Contains(node.Style, "image=data:") {
				continue
			}
			info := model.EmbeddedImage(node.Style)
			if info == nil {
				e.warnings = append(e.warnings, Warning{
					Code:    WarnImageDecode,
					Message: fmt.Sprintf("page %q cell %q: undecodable image payload", pageName(page), node.ID),
				})
				continue
			}
			images = append(images, ImageEntry{
				Page:   pageName(page),
				ID:     node.ID,
				Format: info.Format,
				Width:  info.Width,
				Height: info.Height,
			})
		}
	}

	return images, e.warnings, nil
}

// ImageText runs OCR over every decodable embedded image and returns the
// recognized text per cell. Requires building with the "ocr" tag; without
// it the operation fails with ocr.ErrOCRNotEnabled. Recognition failures
// on individual images degrade to warnings. Honors the Page filter.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	texts, warnings, err := graphia.Open("diagram.drawio").ImageText()
func (e *Extractor) ImageText() ([]ImageTextEntry, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	pages, err := e.selectPages()
	if err != nil {
		return nil, nil, err
	}

	client, err := ocr.New()
	if err != nil {
		return nil, e.warnings, err
	}
	defer client.Close()

	if e.options.ocrLanguage != "" {
		if err := client.SetLanguage(e.options.ocrLanguage); err != nil {
			return nil, e.warnings, fmt.Errorf("setting OCR language: %w", err)
		}
	}

	var texts []ImageTextEntry
	for _, page := range pages {
		for _, node := range page.Nodes {
			info := model.EmbeddedImage(node.Style)
			if info == nil {
				continue
			}
			recognized, err := client.Recognize(info.Data)
			if err != nil {
				e.warnings = append(e.warnings, Warning{
					Code:    WarnOCR,
					Message: fmt.Sprintf("page %q cell %q: %v", pageName(page), node.ID, err),
				})
				continue
			}
			recognized = strings.TrimSpace(recognized)
			if recognized == "" {
				continue
			}
			texts = append(texts, ImageTextEntry{
				Page: pageName(page),
				ID:   node.ID,
				Text: recognized,
			})
		}
	}

	return texts, e.warnings, nil
}

// Document extracts and returns the full model.Document structure,
// suitable for custom projections beyond the built-in operations.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	doc, warnings, err := graphia.Open("diagram.drawio").Document()
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	return e.reader.Document(), e.warnings, nil
}

// PageCount returns the total number of pages in the document.
// Note: This does NOT close the reader, allowing further operations.
//
// Example:
//
//	ext := graphia.Open("diagram.drawio")
//	defer ext.Close()
//	count, err := ext.PageCount()
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	if err := e.ensureReader(); err != nil {
		return 0, err
	}

	return e.reader.PageCount()
}

// Metadata returns document-level metadata (exporting host, modification
// time, user agent, format version).
// Note: This does NOT close the reader, allowing further operations.
func (e *Extractor) Metadata() (model.Metadata, error) {
	if e.err != nil {
		return model.Metadata{}, e.err
	}

	if err := e.ensureReader(); err != nil {
		return model.Metadata{}, err
	}

	return e.reader.Metadata(), nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// selectPages applies the page-name filter and returns the pages to
// process in document order. A filter naming an absent page fails with
// ErrPageNotFound; a present-but-empty page is a valid selection.
func (e *Extractor) selectPages() ([]*model.Page, error) {
	doc := e.reader.Document()
	if !e.options.pageSet {
		return doc.Pages, nil
	}
	page := doc.PageByName(e.options.page)
	if page == nil {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, e.options.page)
	}
	return []*model.Page{page}, nil
}

// capped reports whether a listing of the given length has hit the
// configured result cap.
func (e *Extractor) capped(length int) bool {
	return e.options.maxResults > 0 && length >= e.options.maxResults
}

// pageName returns the page's display name, substituting "Unnamed" for
// pages with no name attribute.
func pageName(p *model.Page) string {
	if p.Name == "" {
		return "Unnamed"
	}
	return p.Name
}

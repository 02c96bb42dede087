package graphia

// ExtractOptions holds configuration for diagram extraction.
type ExtractOptions struct {
	// Page filter; empty means all pages
	page    string
	pageSet bool

	// Result cap for listings; 0 means unlimited
	maxResults int

	// OCR language for ImageText; empty means the engine default
	ocrLanguage string
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		page:        "",
		pageSet:     false,
		maxResults:  0,
		ocrLanguage: "",
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		page:        o.page,
		pageSet:     o.pageSet,
		maxResults:  o.maxResults,
		ocrLanguage: o.ocrLanguage,
	}
}

package serpjson

// Extractor maps a result page to a Record.
type Extractor interface {
	// Extract parses HTML and returns the structured record.
	// Missing page features are absent from the record, never errors.
	Extract(html string) (*Record, error)
}

// Cleaner reduces a raw result page to the markup that matters for
// extraction.
type Cleaner interface {
	// Clean strips scripts, styles, and tracking noise and isolates the
	// main content region. The output is a complete HTML document.
	Clean(html string) (string, error)
}

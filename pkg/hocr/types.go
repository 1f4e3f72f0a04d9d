package hocr

// Word is a recognized word with its pixel rectangle
// Corresponds to hOCR element with class: 'ocrx_word'
type Word struct {
	Text       string  // The actual text content
	HPos       int     // Left edge in pixels from the page origin
	VPos       int     // Top edge in pixels from the page origin
	Width      int     // Rectangle width in pixels
	Height     int     // Rectangle height in pixels
	Confidence float64 // Recognition confidence from x_wconf (0 when absent)
}

// PageMetrics holds the page dimensions in pixels
// Taken from the bbox of the hOCR element with class: 'ocr_page'
type PageMetrics struct {
	Width  int // Page width in pixels
	Height int // Page height in pixels
}

// Document is the immutable result of one extraction pass.
// Words appear in document order, which is the reading order the OCR engine
// emitted and the order overlay renderers rely on.
type Document struct {
	PlainText string       // Normalized plain text
	Words     []Word       // Words in document order
	Metrics   *PageMetrics // Page dimensions, nil when the page bbox was unparsable
}

// PageWidth returns the page width in pixels.
// The second return value is false when no page dimensions were found.
func (d Document) PageWidth() (int, bool) {
	if d.Metrics == nil {
		return 0, false
	}
	return d.Metrics.Width, true
}

// PageHeight returns the page height in pixels.
// The second return value is false when no page dimensions were found.
func (d Document) PageHeight() (int, bool) {
	if d.Metrics == nil {
		return 0, false
	}
	return d.Metrics.Height, true
}

package hocr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleHOCR mirrors typical tesseract output: one page, two lines,
// three words.
const sampleHOCR = `<!DOCTYPE html>
<html>
<head><title></title></head>
<body><div class="ocr_page" id="page_1" title="image &quot;scan_0001.png&quot;; bbox 0 0 1000 1500; ppageno 0"><span class="ocr_line" title="bbox 10 20 200 50"><span class="ocrx_word" title="bbox 10 20 60 50; x_wconf 95">Hello</span> <span class="ocrx_word" title="bbox 70 20 140 50; x_wconf 92">world</span></span><span class="ocr_line" title="bbox 10 60 200 90"><span class="ocrx_word" title="bbox 10 60 80 90; x_wconf 90">again</span></span></div></body>
</html>`

func mustScan(t *testing.T, markup string) Document {
	t.Helper()
	doc, err := scan(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func TestScanSampleDocument(t *testing.T) {
	doc := mustScan(t, sampleHOCR)

	require.Len(t, doc.Words, 3)
	assert.Equal(t, Word{Text: "Hello", HPos: 10, VPos: 20, Width: 50, Height: 30, Confidence: 95}, doc.Words[0])
	assert.Equal(t, "world", doc.Words[1].Text)
	assert.Equal(t, "again", doc.Words[2].Text)

	require.NotNil(t, doc.Metrics)
	assert.Equal(t, 1000, doc.Metrics.Width)
	assert.Equal(t, 1500, doc.Metrics.Height)

	assert.Equal(t, "Hello world\nagain", strings.TrimSpace(doc.PlainText))
}

func TestScanWordOrderMatchesDocument(t *testing.T) {
	doc := mustScan(t, sampleHOCR)
	var got []string
	for _, w := range doc.Words {
		got = append(got, w.Text)
	}
	assert.Equal(t, []string{"Hello", "world", "again"}, got)
}

func TestScanMalformedWordDropped(t *testing.T) {
	markup := `<div class="ocr_page" title="p; bbox 0 0 500 500"><span class="ocr_line">` +
		`<span class="ocrx_word" title="bbox 1 2 3 4">First</span> ` +
		`<span class="ocrx_word" title="no box here">Bad</span> ` +
		`<span class="ocrx_word" title="bbox 9 9 12 12">Last</span></span></div>`
	doc := mustScan(t, markup)

	// The malformed sibling disappears from the word list without aborting
	// the parse, but its text still reaches the plain text stream.
	require.Len(t, doc.Words, 2)
	assert.Equal(t, "First", doc.Words[0].Text)
	assert.Equal(t, "Last", doc.Words[1].Text)
	assert.Equal(t, "First Bad Last\n", doc.PlainText)
}

func TestScanWordWithoutTitleDropped(t *testing.T) {
	markup := `<span class="ocr_line"><span class="ocrx_word">Naked</span></span>`
	doc := mustScan(t, markup)
	assert.Empty(t, doc.Words)
	assert.Equal(t, "Naked\n", doc.PlainText)
}

func TestScanEmptyWordDropped(t *testing.T) {
	markup := `<span class="ocr_line"><span class="ocrx_word" title="bbox 1 2 3 4"></span></span>`
	doc := mustScan(t, markup)
	assert.Empty(t, doc.Words)
}

func TestScanUnterminatedWordKeptWhenWellFormed(t *testing.T) {
	markup := `<span class="ocr_line"><span class="ocrx_word" title="bbox 1 2 3 4">One` +
		`<span class="ocrx_word" title="bbox 5 6 9 9">Two</span></span></span>`
	doc := mustScan(t, markup)

	require.Len(t, doc.Words, 2)
	assert.Equal(t, Word{Text: "One", HPos: 1, VPos: 2, Width: 2, Height: 2}, doc.Words[0])
	assert.Equal(t, Word{Text: "Two", HPos: 5, VPos: 6, Width: 4, Height: 3}, doc.Words[1])
}

func TestScanUnterminatedWordDroppedWhenMalformed(t *testing.T) {
	markup := `<span class="ocr_line"><span class="ocrx_word">Orphan` +
		`<span class="ocrx_word" title="bbox 5 6 9 9">Two</span></span></span>`
	doc := mustScan(t, markup)

	require.Len(t, doc.Words, 1)
	assert.Equal(t, "Two", doc.Words[0].Text)
	assert.Contains(t, doc.PlainText, "Orphan")
}

func TestScanWordOpenAtEndOfDocument(t *testing.T) {
	markup := `<span class="ocrx_word" title="bbox 1 1 3 3">End`
	doc := mustScan(t, markup)

	require.Len(t, doc.Words, 1)
	assert.Equal(t, Word{Text: "End", HPos: 1, VPos: 1, Width: 2, Height: 2}, doc.Words[0])
}

func TestScanEmptyLinesCollapse(t *testing.T) {
	markup := `<div class="ocr_page" title="p; bbox 0 0 100 100">` +
		`<span class="ocr_line"></span><span class="ocr_line"></span><span class="ocr_line"></span></div>`
	doc := mustScan(t, markup)
	assert.Equal(t, "\n\n", doc.PlainText)
}

func TestScanEmptyLinesWithMarkupNewlines(t *testing.T) {
	markup := "<span class=\"ocr_line\"></span>\n<span class=\"ocr_line\"></span>\n<span class=\"ocr_line\"></span>\n"
	doc := mustScan(t, markup)
	assert.NotContains(t, doc.PlainText, "\n\n\n")
}

func TestScanTrailingWhitespaceTrimmed(t *testing.T) {
	markup := `<span class="ocr_line"><span class="ocrx_word" title="bbox 1 2 3 4">Hi</span>` + "  \t" + `</span>`
	doc := mustScan(t, markup)
	assert.Equal(t, "Hi\n", doc.PlainText)
}

func TestScanNormalizedTextInvariants(t *testing.T) {
	doc := mustScan(t, sampleHOCR)
	assert.NotContains(t, doc.PlainText, "\n\n\n")
	for _, line := range strings.Split(doc.PlainText, "\n") {
		assert.Equal(t, strings.TrimRight(line, " \t"), line)
	}
}

func TestScanPageMetricsFirstSuccessWins(t *testing.T) {
	markup := `<div class="ocr_page" title="broken"></div>` +
		`<div class="ocr_page" title="x; bbox 0 0 800 600"></div>` +
		`<div class="ocr_page" title="x; bbox 0 0 999 999"></div>`
	doc := mustScan(t, markup)

	require.NotNil(t, doc.Metrics)
	assert.Equal(t, 800, doc.Metrics.Width)
	assert.Equal(t, 600, doc.Metrics.Height)
}

func TestScanNoPageMetrics(t *testing.T) {
	markup := `<span class="ocr_line"><span class="ocrx_word" title="bbox 1 2 3 4">Hi</span></span>`
	doc := mustScan(t, markup)

	assert.Nil(t, doc.Metrics)
	_, ok := doc.PageWidth()
	assert.False(t, ok)
	require.Len(t, doc.Words, 1)
}

func TestScanDecodesEntities(t *testing.T) {
	markup := `<span class="ocr_line"><span class="ocrx_word" title="bbox 1 1 4 4">Fish &amp; Chips</span></span>`
	doc := mustScan(t, markup)

	require.Len(t, doc.Words, 1)
	assert.Equal(t, "Fish & Chips", doc.Words[0].Text)
}

func TestScanUnrecognizedElementsTransparent(t *testing.T) {
	// ocr_carea and ocr_par grouping must not change the outcome.
	grouped := `<div class="ocr_page" title="p; bbox 0 0 500 500"><div class="ocr_carea"><p class="ocr_par">` +
		`<span class="ocr_line"><span class="ocrx_word" title="bbox 1 2 3 4">Hi</span></span></p></div></div>`
	flat := `<div class="ocr_page" title="p; bbox 0 0 500 500">` +
		`<span class="ocr_line"><span class="ocrx_word" title="bbox 1 2 3 4">Hi</span></span></div>`

	assert.Equal(t, mustScan(t, flat).Words, mustScan(t, grouped).Words)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, classPage, classify("div", "ocr_page"))
	assert.Equal(t, classLine, classify("span", "ocr_line"))
	assert.Equal(t, classWord, classify("span", "ocrx_word"))
	assert.Equal(t, classNone, classify("span", "ocr_page"))
	assert.Equal(t, classNone, classify("div", "ocr_line"))
	assert.Equal(t, classNone, classify("span", ""))
	assert.Equal(t, classNone, classify("p", "ocr_par"))
}

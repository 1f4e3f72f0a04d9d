package hocr

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// elementClass identifies which of the recognized hOCR selectors the scanner
// is currently inside.
type elementClass int

const (
	classNone elementClass = iota
	classPage
	classLine
	classWord
)

// classify maps a (tag, class attribute) pair to one of the recognized hOCR
// selectors. Every other element is transparent to the scanner.
func classify(tag, class string) elementClass {
	switch {
	case tag == "div" && strings.Contains(class, "ocr_page"):
		return classPage
	case tag == "span" && strings.Contains(class, "ocr_line"):
		return classLine
	case tag == "span" && strings.Contains(class, "ocrx_word"):
		return classWord
	}
	return classNone
}

// pendingWord accumulates one in-progress word between its start and end tags.
type pendingWord struct {
	text       strings.Builder
	hpos       int
	vpos       int
	width      int
	height     int
	hasCoords  bool
	confidence float64
}

// token finalizes the pending word. A word is kept only when it has text and
// its bbox resolved to all four coordinates.
func (w *pendingWord) token() (Word, bool) {
	if !w.hasCoords || w.text.Len() == 0 {
		return Word{}, false
	}
	return Word{
		Text:       w.text.String(),
		HPos:       w.hpos,
		VPos:       w.vpos,
		Width:      w.width,
		Height:     w.height,
		Confidence: w.confidence,
	}, true
}

// textAssembler owns the running plain-text buffer.
type textAssembler struct {
	buf []byte
}

func (t *textAssembler) appendRaw(s string) {
	t.buf = append(t.buf, s...)
}

// endLine trims trailing whitespace from the current line and breaks it.
func (t *textAssembler) endLine() {
	t.buf = bytes.TrimRight(t.buf, " \t")
	t.buf = append(t.buf, '\n')
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// finalize normalizes the whole buffer: no line keeps trailing whitespace and
// runs of blank lines are capped at one.
func (t *textAssembler) finalize() string {
	lines := strings.Split(string(t.buf), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return blankRuns.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
}

// scanState is the per-pass state advanced by tokenizer events. Each pass
// builds a fresh value, so concurrent passes over distinct documents never
// share anything.
type scanState struct {
	current elementClass
	word    *pendingWord
	text    textAssembler
	words   []Word
	metrics *PageMetrics
}

// scan folds one pass of streaming tokenizer events into a Document.
// The tokenizer is lenient about real-world hOCR irregularities; the only
// fatal condition is input it cannot tokenize at all.
func scan(r io.Reader) (Document, error) {
	z := html.NewTokenizer(r)
	var st scanState

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return Document{}, &ParseError{Err: err}
			}
			return st.finish(), nil
		case html.StartTagToken:
			st.startElement(z.Token())
		case html.SelfClosingTagToken:
			tok := z.Token()
			st.startElement(tok)
			st.endElement(tok.Data)
		case html.TextToken:
			st.characters(string(z.Text()))
		case html.EndTagToken:
			name, _ := z.TagName()
			st.endElement(string(name))
		}
	}
}

// startElement handles a start tag. Unrecognized elements change nothing.
func (st *scanState) startElement(tok html.Token) {
	var class, title string
	for _, attr := range tok.Attr {
		switch attr.Key {
		case "class":
			class = attr.Val
		case "title":
			title = attr.Val
		}
	}

	switch classify(tok.Data, class) {
	case classPage:
		st.current = classPage
		// The first page whose bbox parses wins; hOCR for presentation
		// overlays is produced one page at a time.
		if st.metrics == nil {
			st.metrics = pageBox(title)
		}
	case classLine:
		st.current = classLine
	case classWord:
		// An unterminated previous word is closed here so it cannot bleed
		// into the one that is starting.
		st.closeWord()
		st.current = classWord
		word := &pendingWord{confidence: wordConfidence(title)}
		word.hpos, word.vpos, word.width, word.height, word.hasCoords = wordBox(title)
		st.word = word
	}
}

// characters feeds text content to the pending word and the running buffer.
// Text always enters the plain-text stream, whether or not a word ends up
// claiming it.
func (st *scanState) characters(s string) {
	if st.word != nil {
		st.word.text.WriteString(s)
	}
	st.text.appendRaw(s)
}

// endElement handles an end tag. Only span end tags matter: they close the
// word or line the scanner is inside.
func (st *scanState) endElement(tag string) {
	if tag != "span" {
		return
	}
	switch st.current {
	case classWord:
		st.closeWord()
		st.current = classLine
	case classLine:
		st.text.endLine()
		st.current = classNone
	}
}

// closeWord finalizes the pending word, keeping it only when well-formed.
// Malformed words are dropped silently; the rest of the document is
// unaffected.
func (st *scanState) closeWord() {
	if st.word == nil {
		return
	}
	if tok, ok := st.word.token(); ok {
		st.words = append(st.words, tok)
	}
	st.word = nil
}

// finish closes any word left open by unterminated markup and freezes the
// state into the final Document.
func (st *scanState) finish() Document {
	st.closeWord()
	return Document{
		PlainText: st.text.finalize(),
		Words:     st.words,
		Metrics:   st.metrics,
	}
}

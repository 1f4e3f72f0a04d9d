package hocr

import (
	"bytes"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Reader runs a single extraction pass over hOCR input and exposes the
// immutable result. A Reader is safe to share read-only across goroutines;
// each construction owns its parse state exclusively.
type Reader struct {
	doc Document
}

// New builds a Reader from either literal hOCR markup or a path to an hOCR
// file. Input whose first non-whitespace character is '<' is treated as
// markup, anything else as a filesystem path.
func New(input string) (*Reader, error) {
	if strings.HasPrefix(strings.TrimLeft(input, " \t\r\n"), "<") {
		return FromBytes([]byte(input))
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return nil, &IOError{Path: input, Err: err}
	}
	return FromBytes(data)
}

// FromBytes builds a Reader from raw hOCR data, decoding legacy character
// encodings first.
func FromBytes(data []byte) (*Reader, error) {
	decoded, err := decodeCharset(data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	doc, err := scan(bytes.NewReader(decoded))
	if err != nil {
		return nil, err
	}
	return &Reader{doc: doc}, nil
}

// decodeCharset converts non-UTF-8 hOCR data to UTF-8. Some legacy OCR
// engines declare ISO-8859-1 in their meta charset; the declared encoding is
// sniffed from the raw bytes the same way a browser would.
func decodeCharset(data []byte) ([]byte, error) {
	content := string(data)
	encoding := "utf-8"
	if strings.Contains(content, "charset=") {
		metaStart := strings.Index(content, "charset=") + len("charset=")
		metaEnd := min(metaStart+20, len(content))
		if metaEnd > metaStart+10 {
			fields := strings.FieldsFunc(content[metaStart:metaEnd], func(r rune) bool {
				return r == '"' || r == ';' || r == '\'' || r == '>'
			})
			if len(fields) > 0 && fields[0] != "" {
				encoding = strings.ToLower(fields[0])
			}
		}
	}

	if encoding == "utf-8" {
		return data, nil
	}
	return charmap.ISO8859_1.NewDecoder().Bytes(data)
}

// Document returns the result of the extraction pass.
func (r *Reader) Document() Document { return r.doc }

// Text returns the normalized plain text of the page.
func (r *Reader) Text() string { return r.doc.PlainText }

// Words returns the recognized words in document order.
func (r *Reader) Words() []Word { return r.doc.Words }

// Coords returns the canonical word-coordinate structure.
func (r *Reader) Coords() WordCoords { return r.doc.Coords() }

// CoordsJSON returns the canonical word-coordinate structure as JSON.
func (r *Reader) CoordsJSON() (string, error) { return r.doc.CoordsJSON() }

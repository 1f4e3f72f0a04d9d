package hocr

import "fmt"

// IOError reports that an input path could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read hOCR input %q: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports input that could not be tokenized as HTML at all.
// Recoverable problems (malformed bboxes, unterminated words) never surface
// as a ParseError; they are dropped at the smallest possible scope.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse hOCR data: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

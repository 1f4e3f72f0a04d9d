// Package hocr extracts plain text and word pixel coordinates from hOCR data,
// the HTML-based standard format for representing OCR results.
//
// This package provides:
//
// - A single-pass streaming scanner over hOCR markup
// - Plain text assembly with line and blank-run normalization
// - Word bounding boxes in document (reading) order
// - Page pixel dimensions taken from the ocr_page element
// - A canonical JSON coordinate structure for text overlay front ends
//
// The scanner recognizes the three hOCR selectors that carry positional text:
// 'ocr_page' for page boundaries, 'ocr_line' for line breaks, and 'ocrx_word'
// for individual words. Every other element is transparent, so hOCR produced
// by different engines (with or without ocr_carea/ocr_par grouping) yields the
// same words and text.
//
// Key Types:
//
// - Reader: runs one extraction pass over literal markup or an hOCR file
// - Document: the immutable result of a pass (text, words, page metrics)
// - Word: a single recognized word with its pixel rectangle
// - WordCoords: the canonical width/height/words structure, JSON-ready
//
// Main Functions:
//
// - New: builds a Reader from markup or a file path
// - FromBytes: builds a Reader from raw hOCR bytes
// - ParseTitle: breaks an hOCR title attribute into its properties
package hocr

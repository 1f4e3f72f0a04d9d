package hocr

import (
	"strconv"
	"strings"
)

// ParseTitle breaks down an hOCR title attribute into its components
// Example input: "bbox 100 200 300 400; x_wconf 95"
func ParseTitle(title string) map[string][]string {
	result := make(map[string][]string)
	for _, part := range strings.Split(title, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		items := strings.Fields(part)
		if len(items) > 0 {
			result[items[0]] = items[1:]
		}
	}

	return result
}

// bboxField parses one semicolon-separated field of a title attribute as a
// "bbox x1 y1 x2 y2" declaration. The field must lead with the bbox keyword;
// anything short of four integers fails.
func bboxField(field string) ([4]int, bool) {
	var coords [4]int

	rest, found := strings.CutPrefix(strings.TrimSpace(field), "bbox ")
	if !found {
		return coords, false
	}

	values := strings.Fields(rest)
	if len(values) < 4 {
		return coords, false
	}
	for i := range coords {
		n, err := strconv.Atoi(values[i])
		if err != nil {
			return coords, false
		}
		coords[i] = n
	}

	return coords, true
}

// wordBox reads the pixel rectangle of a word from its title attribute.
// The word convention places the bbox in the first field:
//
//	"bbox 10 20 60 50; x_wconf 95"
//
// The rectangle is position plus extent, so x2/y2 become width/height deltas.
// A missing or malformed bbox returns ok=false and the word is later dropped
// at finalize time.
func wordBox(title string) (hpos, vpos, width, height int, ok bool) {
	fields := strings.Split(title, ";")
	coords, ok := bboxField(fields[0])
	if !ok {
		return 0, 0, 0, 0, false
	}
	return coords[0], coords[1], coords[2] - coords[0], coords[3] - coords[1], true
}

// pageBox reads the page dimensions from an ocr_page title attribute.
// The page convention places the bbox in the second field, after the image
// reference:
//
//	`image "page1.png"; bbox 0 0 2450 3300; ppageno 0`
//
// The page bbox corner is read directly as the dimensions. Note that a page
// bbox with a non-zero origin would make this wrong; no OCR engine we consume
// emits one, so the corner convention is kept rather than normalized to
// x2-x1/y2-y1.
func pageBox(title string) *PageMetrics {
	fields := strings.Split(title, ";")
	if len(fields) < 2 {
		return nil
	}
	coords, ok := bboxField(fields[1])
	if !ok {
		return nil
	}
	return &PageMetrics{Width: coords[2], Height: coords[3]}
}

// wordConfidence reads the x_wconf property from a word title attribute,
// returning 0 when absent or malformed.
func wordConfidence(title string) float64 {
	props := ParseTitle(title)
	if conf, ok := props["x_wconf"]; ok && len(conf) > 0 {
		value, _ := strconv.ParseFloat(conf[0], 64)
		return value
	}
	return 0
}

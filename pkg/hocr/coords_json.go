package hocr

import "encoding/json"

// WordCoords is the canonical coordinate structure consumed by text-overlay
// and search-highlight front ends. Width and height are null when the page
// bbox was unparsable.
type WordCoords struct {
	Width  *int        `json:"width"`
	Height *int        `json:"height"`
	Words  []WordCoord `json:"words"`
}

// WordCoord is one word entry. Array position N corresponds to word N in
// reading order; overlay renderers match entries to text hits by index.
type WordCoord struct {
	Word   string `json:"word"`
	HPos   int    `json:"hpos"`
	VPos   int    `json:"vpos"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Coords renders the document's words and page metrics into the canonical
// structure. The rendering is pure: the same document always yields the same
// structure.
func (d Document) Coords() WordCoords {
	coords := WordCoords{
		Words: make([]WordCoord, 0, len(d.Words)),
	}
	if d.Metrics != nil {
		width, height := d.Metrics.Width, d.Metrics.Height
		coords.Width = &width
		coords.Height = &height
	}
	for _, w := range d.Words {
		coords.Words = append(coords.Words, WordCoord{
			Word:   w.Text,
			HPos:   w.HPos,
			VPos:   w.VPos,
			Width:  w.Width,
			Height: w.Height,
		})
	}
	return coords
}

// CoordsJSON returns the canonical structure as pretty-printed JSON, ready to
// persist as a coordinate derivative.
func (d Document) CoordsJSON() (string, error) {
	data, err := json.MarshalIndent(d.Coords(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

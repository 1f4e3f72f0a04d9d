// hocrwords is a command-line tool for extracting plain text and word
// coordinates from hOCR files.
//
// This tool runs the streaming hOCR scanner over one or more pages and writes
// the results as derivative files: a normalized plain-text file for indexing
// and a JSON coordinate structure for text-overlay rendering.
//
// Usage:
//
//	hocrwords -hocr page.hocr [options]
//	hocrwords -batch pages.yml
//
// Input flags (one required):
//
//	-hocr string   Path to a single hOCR file
//	-batch string  Path to a YAML manifest listing pages to process
//
// Output options (at least one required with -hocr):
//
//	-text string    Path to save the plain text output
//	-coords string  Path to save the word coordinates JSON
//
// Batch manifest format:
//
//	pages:
//	  - hocr: page1.hocr
//	    text: page1.txt
//	    coords: page1.json
//	  - hocr: page2.hocr
//	    coords: page2.json
//
// Example:
//
//	hocrwords -hocr scan_0001.hocr -text scan_0001.txt -coords scan_0001.json
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cziaarm/iiif-print/pkg/hocr"
)

// batchManifest lists the pages of a scanned work and where their derivative
// files should be written.
type batchManifest struct {
	Pages []batchPage `yaml:"pages"`
}

type batchPage struct {
	Hocr   string `yaml:"hocr"`
	Text   string `yaml:"text"`
	Coords string `yaml:"coords"`
}

// loadManifest reads a YAML batch manifest from disk.
func loadManifest(path string) (*batchManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var manifest batchManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}

// processPage extracts one hOCR page and writes the requested derivatives.
func processPage(page batchPage) error {
	reader, err := hocr.New(page.Hocr)
	if err != nil {
		return err
	}

	if page.Text != "" {
		if err := os.WriteFile(page.Text, []byte(reader.Text()), 0644); err != nil {
			return fmt.Errorf("failed to write text output: %w", err)
		}
		fmt.Println("Plain text saved to:", page.Text)
	}

	if page.Coords != "" {
		coordsJSON, err := reader.CoordsJSON()
		if err != nil {
			return fmt.Errorf("failed to serialize word coordinates: %w", err)
		}
		if err := os.WriteFile(page.Coords, []byte(coordsJSON), 0644); err != nil {
			return fmt.Errorf("failed to write coordinates output: %w", err)
		}
		fmt.Println("Word coordinates saved to:", page.Coords)
	}

	return nil
}

func main() {
	hocrPath := flag.String("hocr", "", "Path to the input hOCR file")
	batchPath := flag.String("batch", "", "Path to a YAML manifest of pages to process")
	textPath := flag.String("text", "", "Path to save plain text output")
	coordsPath := flag.String("coords", "", "Path to save word coordinates JSON")
	flag.Parse()

	// Validate that either a single file or a batch manifest is provided
	if (*hocrPath == "" && *batchPath == "") || (*hocrPath != "" && *batchPath != "") {
		fmt.Fprintln(os.Stderr, "Error: Either -hocr or -batch flag must be provided (but not both)")
		fmt.Fprintln(os.Stderr, "Usage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *batchPath != "" {
		manifest, err := loadManifest(*batchPath)
		if err != nil {
			log.Fatalf("Failed to load batch manifest: %v", err)
		}
		if len(manifest.Pages) == 0 {
			log.Fatalf("Batch manifest %s lists no pages", *batchPath)
		}

		fmt.Printf("Processing %d pages from %s\n", len(manifest.Pages), *batchPath)
		for i, page := range manifest.Pages {
			if page.Hocr == "" {
				log.Fatalf("Page %d in manifest has no hocr path", i+1)
			}
			fmt.Printf("Processing page %d: %s\n", i+1, page.Hocr)
			if err := processPage(page); err != nil {
				log.Fatalf("Error processing %s: %v", page.Hocr, err)
			}
		}
		return
	}

	// Single file mode needs at least one output
	if *textPath == "" && *coordsPath == "" {
		fmt.Fprintln(os.Stderr, "Error: At least one output flag must be provided (-text or -coords)")
		fmt.Fprintln(os.Stderr, "Usage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := processPage(batchPage{Hocr: *hocrPath, Text: *textPath, Coords: *coordsPath}); err != nil {
		log.Fatalf("Error processing %s: %v", *hocrPath, err)
	}
}

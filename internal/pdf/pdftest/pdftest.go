// Package pdftest builds small PDF documents for tests.
//
// Page n (1-indexed) of a generated document is (100+n) x 200 points, so the
// origin of a page can be recovered from its width after it has been copied
// into another document.
package pdftest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/signintech/gopdf"
)

// PageHeight is the height of every generated page
const PageHeight = 200

// PageWidth returns the width given to source page n
func PageWidth(n int) float64 {
	return float64(100 + n)
}

// Build returns a PDF document with pageCount pages
func Build(t testing.TB, pageCount int) []byte {
	t.Helper()

	p := gopdf.GoPdf{}
	p.Start(gopdf.Config{PageSize: gopdf.Rect{W: PageWidth(1), H: PageHeight}})
	for n := 1; n <= pageCount; n++ {
		p.AddPageWithOption(gopdf.PageOption{PageSize: &gopdf.Rect{W: PageWidth(n), H: PageHeight}})
		p.Line(0, 0, PageWidth(n), PageHeight)
	}

	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		t.Fatalf("Failed to build %d page fixture: %v", pageCount, err)
	}
	return buf.Bytes()
}

// WriteFile writes a pageCount page document into dir and returns its path
func WriteFile(t testing.TB, dir string, name string, pageCount int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, Build(t, pageCount), 0644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", path, err)
	}
	return path
}

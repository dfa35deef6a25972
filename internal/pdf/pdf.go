package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Document is a read-only handle over a validated source PDF
type Document struct {
	ctx *model.Context
}

// Output is a new document assembled from pages of a Document
type Output struct {
	ctx       *model.Context
	pageCount int
	skipped   int
}

// Open reads, validates and optimizes the PDF at path
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return doc, nil
}

// Read reads, validates and optimizes a PDF from rs
func Read(rs io.ReadSeeker) (*Document, error) {
	conf := model.NewDefaultConfiguration()
	pdfContext, err := api.ReadValidateAndOptimize(rs, conf)
	if err != nil {
		return nil, err
	}
	return &Document{ctx: pdfContext}, nil
}

// PageCount returns the total number of pages in the document
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// Extract copies the pages at the given 0-indexed positions into a new
// document, keeping their order. Positions outside the document are skipped
// and counted in Output.Skipped.
func (d *Document) Extract(indexes []int) (*Output, error) {
	pageNrs := make([]int, 0, len(indexes))
	skipped := 0
	for _, idx := range indexes {
		if idx < 0 || idx >= d.PageCount() {
			skipped++
			continue
		}
		pageNrs = append(pageNrs, idx+1)
	}

	outContext, err := pdfcpu.ExtractPages(d.ctx, pageNrs, false)
	if err != nil {
		return nil, fmt.Errorf("failed to extract pages: %w", err)
	}

	return &Output{
		ctx:       outContext,
		pageCount: len(pageNrs),
		skipped:   skipped,
	}, nil
}

// PageCount returns the number of pages copied into the output
func (o *Output) PageCount() int {
	return o.pageCount
}

// Skipped returns how many requested positions were past the source's end
func (o *Output) Skipped() int {
	return o.skipped
}

// Bytes serializes the output document
func (o *Output) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := api.WriteContext(o.ctx, &buf); err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}
	return buf.Bytes(), nil
}

// Inspect reads a written document without validating it and returns its
// page count and page dimensions in page order. Zero-page documents are
// accepted.
func Inspect(rs io.ReadSeeker) (int, []types.Dim, error) {
	pdfContext, err := api.ReadContext(rs, model.NewDefaultConfiguration())
	if err != nil {
		return 0, nil, err
	}
	if err := pdfContext.EnsurePageCount(); err != nil {
		return 0, nil, err
	}
	if pdfContext.PageCount == 0 {
		return 0, nil, nil
	}
	dims, err := pdfContext.PageDims()
	if err != nil {
		return 0, nil, err
	}
	return pdfContext.PageCount, dims, nil
}

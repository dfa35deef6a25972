package pdftest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Epistemic-Technology/guide-splitter/internal/pdf"
)

func TestBuild_PageWidthsFollowPageOrder(t *testing.T) {
	doc, err := pdf.Read(bytes.NewReader(Build(t, 5)))
	require.NoError(t, err)
	assert.Equal(t, 5, doc.PageCount())

	out, err := doc.Extract([]int{3, 4, 9})
	require.NoError(t, err)
	data, err := out.Bytes()
	require.NoError(t, err)

	pageCount, dims, err := pdf.Inspect(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 2, pageCount)
	for i, n := range []int{4, 5} {
		assert.InDelta(t, PageWidth(n), dims[i].Width, 0.01)
		assert.InDelta(t, float64(PageHeight), dims[i].Height, 0.01)
	}
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, t.TempDir(), "fixture.pdf", 3)

	doc, err := pdf.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 3, doc.PageCount())
}

package models

// Chapter describes one output file: a named, inclusive, 1-indexed page range
// of the source document.
type Chapter struct {
	Name      string
	StartPage int
	EndPage   int
}

// PageIndexes returns the 0-indexed pages [StartPage-1, EndPage) in ascending
// order. Inverted ranges yield no indexes.
func (c Chapter) PageIndexes() []int {
	var indexes []int
	for i := c.StartPage - 1; i < c.EndPage; i++ {
		indexes = append(indexes, i)
	}
	return indexes
}

// FileName returns the output file name for the chapter
func (c Chapter) FileName() string {
	return c.Name + ".pdf"
}

// Artifact describes one written chapter file
type Artifact struct {
	Chapter   Chapter
	Path      string
	PageCount int
	Skipped   int
	Size      int
	Digest    string
}

// Summary is the result of one split run
type Summary struct {
	OutputDir string
	Artifacts []Artifact
}

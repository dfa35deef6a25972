package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChapterPageIndexes(t *testing.T) {
	tests := []struct {
		name     string
		chapter  Chapter
		expected []int
	}{
		{
			name:     "single page",
			chapter:  Chapter{Name: "02_agenda", StartPage: 4, EndPage: 4},
			expected: []int{3},
		},
		{
			name:     "range",
			chapter:  Chapter{Name: "22_index", StartPage: 60, EndPage: 62},
			expected: []int{59, 60, 61},
		},
		{
			name:     "inverted range",
			chapter:  Chapter{Name: "bad", StartPage: 5, EndPage: 3},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.chapter.PageIndexes())
		})
	}
}

func TestChapterFileName(t *testing.T) {
	c := Chapter{Name: "00_couverture", StartPage: 1, EndPage: 1}
	assert.Equal(t, "00_couverture.pdf", c.FileName())
}

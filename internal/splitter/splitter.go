package splitter

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/zeebo/blake3"

	"github.com/Epistemic-Technology/guide-splitter/internal/logger"
	"github.com/Epistemic-Technology/guide-splitter/internal/pdf"
	"github.com/Epistemic-Technology/guide-splitter/models"
)

// Splitter writes one PDF per chapter from a single source document.
// It runs strictly sequentially.
type Splitter struct {
	log      logger.Logger
	progress io.Writer

	created *color.Color
	done    *color.Color
}

// New creates a Splitter that reports progress lines to progress
func New(log logger.Logger, progress io.Writer) *Splitter {
	return &Splitter{
		log:      log,
		progress: progress,
		created:  color.New(color.FgGreen),
		done:     color.New(color.Bold),
	}
}

// Run creates outputDir if needed, opens the source and writes
// <outputDir>/<name>.pdf for every chapter in order, overwriting existing
// files. Pages past the end of the source are skipped. The first error aborts
// the run; files written before it are left in place.
func (s *Splitter) Run(sourcePath string, chapters []models.Chapter, outputDir string) (*models.Summary, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Fprintf(s.progress, "Reading %s...\n", sourcePath)
	doc, err := pdf.Open(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open source document: %w", err)
	}
	totalPages := doc.PageCount()
	fmt.Fprintf(s.progress, "Total pages: %d\n", totalPages)

	summary := &models.Summary{OutputDir: outputDir}
	for _, chapter := range chapters {
		artifact, err := s.writeChapter(doc, chapter, outputDir)
		if err != nil {
			return summary, err
		}
		summary.Artifacts = append(summary.Artifacts, *artifact)

		s.created.Fprint(s.progress, "Created:")
		fmt.Fprintf(s.progress, " %s (pages %d-%d)\n", artifact.Path, chapter.StartPage, chapter.EndPage)
	}

	fmt.Fprintln(s.progress)
	s.done.Fprint(s.progress, "Done!")
	fmt.Fprintf(s.progress, " Created %d chapter files in '%s/'\n", len(chapters), outputDir)

	return summary, nil
}

func (s *Splitter) writeChapter(doc *pdf.Document, chapter models.Chapter, outputDir string) (*models.Artifact, error) {
	out, err := doc.Extract(chapter.PageIndexes())
	if err != nil {
		return nil, fmt.Errorf("failed to assemble %s: %w", chapter.Name, err)
	}
	if out.Skipped() > 0 {
		s.log.Debug("%s: %d of pages %d-%d are past the end of the source (%d pages)",
			chapter.Name, out.Skipped(), chapter.StartPage, chapter.EndPage, doc.PageCount())
	}

	data, err := out.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize %s: %w", chapter.Name, err)
	}

	path := filepath.Join(outputDir, chapter.FileName())
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	sum := blake3.Sum256(data)
	artifact := &models.Artifact{
		Chapter:   chapter,
		Path:      path,
		PageCount: out.PageCount(),
		Skipped:   out.Skipped(),
		Size:      len(data),
		Digest:    hex.EncodeToString(sum[:]),
	}

	return artifact, nil
}

// LogSummary records each written artifact and the run total at debug level
func LogSummary(log logger.Logger, summary *models.Summary) {
	pages := 0
	for _, a := range summary.Artifacts {
		pages += a.PageCount
		log.Debug("artifact %s: %d pages, blake3 %s", a.Path, a.PageCount, a.Digest)
	}
	log.Debug("split complete: %d artifacts, %d pages in %s", len(summary.Artifacts), pages, summary.OutputDir)
}

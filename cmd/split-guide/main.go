// Command split-guide splits the Geneva tax guide PDF into one file per
// chapter under knowledge/chapters.
//
// It is run without arguments. The only options select where logs go and how
// verbose they are; each can also be set from the environment.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/Epistemic-Technology/guide-splitter/internal/chapters"
	"github.com/Epistemic-Technology/guide-splitter/internal/logger"
	"github.com/Epistemic-Technology/guide-splitter/internal/splitter"
)

// cli only carries logging options. The source, output directory and chapter
// table are fixed.
type cli struct {
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" env:"LOG_LEVEL"`
	LogOutput string `name:"log-output" help:"Log destination (stderr or file)" env:"LOG_OUTPUT"`
	LogFile   string `name:"log-file" help:"Log file path when --log-output=file" env:"LOG_FILE_PATH"`

	// Positional arguments are accepted and ignored.
	Ignored []string `arg:"" optional:"" hidden:""`
}

func parseCLI(args []string) (*cli, error) {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("split-guide"),
		kong.Description("Split the Geneva tax guide 2024 into chapter PDFs"),
		kong.UsageOnError(),
	)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Parse(args); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *cli) logConfig() logger.LogConfig {
	return logger.LogConfig{
		Output:   c.LogOutput,
		Level:    c.LogLevel,
		FilePath: c.LogFile,
	}
}

func main() {
	c, err := parseCLI(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "split-guide: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(c.logConfig())
	if err != nil {
		panic(err)
	}

	s := splitter.New(log, os.Stdout)
	summary, err := s.Run(chapters.SourcePath, chapters.Guide2024(), chapters.OutputDir)
	if err != nil {
		log.Fatal("Split failed: %v", err)
	}
	splitter.LogSummary(log, summary)
}

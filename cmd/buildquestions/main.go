// Command buildquestions converts the raw question bank text into
// the generated questions.js data file consumed by the quiz app.
// It takes no arguments: input and output live next to the binary.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"digital.vasic.questionbank/pkg/emit"
	"digital.vasic.questionbank/pkg/logging"
	"digital.vasic.questionbank/pkg/question"
	"digital.vasic.questionbank/pkg/report"
	"digital.vasic.questionbank/pkg/scan"
	"digital.vasic.questionbank/pkg/stats"
)

const (
	inputFile  = "ALL_QUESTIONS_AND_ANSWERS.txt"
	outputFile = "questions.js"
)

func main() {
	logger := logging.NewConsoleLogger(false)
	if err := run(logger); err != nil {
		logger.Error("build failed", logging.ErrorField(err))
		os.Exit(1)
	}
}

// run executes one build start to finish. Warnings go to the
// logger on stderr; the report goes to stdout. Any returned error
// aborts the run.
func run(logger logging.Logger) error {
	baseDir, err := executableDir()
	if err != nil {
		return err
	}
	inputPath := filepath.Join(baseDir, inputFile)
	outputPath := filepath.Join(baseDir, outputFile)

	table, err := question.LoadCategoryTable()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input %s: %w", inputPath, err)
	}

	counts := stats.NewCounts()
	var results []scan.Result
	for _, segment := range scan.SplitCategories(splitLines(string(data))) {
		parser := scan.NewParser(segment, logger, counts)
		results = append(results, parser.Parse())
	}

	bank := question.Build(table, results, counts)

	for _, verr := range question.Validate(bank) {
		logger.Warn("bank invariant violated", logging.ErrorField(verr))
	}

	summary := report.Build(table, counts, bank)
	if err := report.WriteText(os.Stdout, summary); err != nil {
		return err
	}

	if err := emit.WriteArtifact(outputPath, bank); err != nil {
		return err
	}

	return report.WriteTotals(os.Stdout, summary, outputPath)
}

// executableDir resolves the directory holding the running binary.
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	return filepath.Dir(exe), nil
}

// splitLines splits on newlines, tolerating CRLF input.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

package kcm

import (
	"fmt"
	"io"
	"os"
)

type BatchResult struct {
	Files   []string `json:"files" yaml:"files"`
	Locales int      `json:"locales" yaml:"locales"`
}

// Batch generates every file a manifest requests.
type Batch struct {
	Generator *Generator
	Out       io.Writer
}

func NewBatch(out io.Writer) *Batch {
	if out == nil {
		out = os.Stdout
	}
	return &Batch{Generator: NewGenerator(), Out: out}
}

func (b *Batch) Run(manifestPath, outputDir string) (*BatchResult, error) {
	rows, err := ReadManifest(manifestPath)
	if err != nil {
		return nil, err
	}
	return b.Generate(rows, outputDir)
}

// Generate writes the files for rows; the first error stops the batch.
func (b *Batch) Generate(rows []ManifestRow, outputDir string) (*BatchResult, error) {
	result := BatchResult{Files: []string{}}
	for _, row := range rows {
		files := row.Files()
		for _, file := range files {
			fmt.Fprintf(b.Out, "Generating %s for %s: %s\n", file.Layout, row.Locale, file.Filename)
			path, err := b.Generator.GenerateFile(row.Locale, file.Layout, file.Filename, outputDir)
			if err != nil {
				return nil, err
			}
			result.Files = append(result.Files, path)
		}
		if len(files) > 0 {
			result.Locales++
		}
	}
	fmt.Fprintf(b.Out, "\nGenerated %d KCM files in %s\n", result.Locales, outputDir)
	return &result, nil
}

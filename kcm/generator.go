package kcm

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Key is one generated key block.
type Key struct {
	Row      string `json:"row" yaml:"row"`
	Code     int    `json:"code" yaml:"code"`
	Label    string `json:"label" yaml:"label"`
	Physical string `json:"physical" yaml:"physical"`
	Mapping  `yaml:",inline"`
}

type Generator struct {
	Author  string
	DirMode os.FileMode
	verbose bool
	debug   bool
}

func NewGenerator() *Generator {
	return &Generator{
		Author:  ViperGetString("author"),
		DirMode: os.FileMode(DirMode()),
		verbose: ViperGetBool("verbose"),
		debug:   ViperGetBool("debug"),
	}
}

// Keys resolves every key of the physical layout in row order.
func (g *Generator) Keys(locale, layoutName string) ([]Key, error) {
	layout, err := GetLayout(layoutName)
	if err != nil {
		return nil, err
	}
	base := physicalLayouts[BaseLayout]
	keys := []Key{}
	for _, row := range rowGroupings {
		for _, code := range row.Codes {
			label, ok := layout[code]
			if !ok {
				continue
			}
			key := Key{
				Row:      row.Name,
				Code:     code,
				Label:    base[code],
				Physical: label,
				Mapping:  Resolve(locale, label),
			}
			if g.debug {
				log.Printf("%s %s %d: %s -> %s %s (%s)\n", locale, layoutName, code, key.Label, key.Physical, key.Base, key.Source)
			}
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (g *Generator) header(locale string) string {
	var b strings.Builder
	b.WriteString("#\n")
	fmt.Fprintf(&b, "# %s for reduced physical keyboard\n", LanguageName(locale))
	if g.Author != "" {
		fmt.Fprintf(&b, "# %s\n", g.Author)
	}
	b.WriteString("#\n\n")
	b.WriteString("type OVERLAY\n\n")
	return b.String()
}

// Render returns the KCM overlay text for locale on the physical layout.
func (g *Generator) Render(locale, layoutName string) (string, error) {
	keys, err := g.Keys(locale, layoutName)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(g.header(locale))
	row := ""
	for _, key := range keys {
		if key.Row != row {
			row = key.Row
			fmt.Fprintf(&b, "### %s\n", row)
		}
		fmt.Fprintf(&b, "key %s {\n", key.Label)
		fmt.Fprintf(&b, "    label: '%s'\n", key.Label)
		fmt.Fprintf(&b, "    base: '%s'\n", UnicodeEscape(key.Base))
		fmt.Fprintf(&b, "    shift, capslock: '%s'\n", UnicodeEscape(key.Shift))
		fmt.Fprintf(&b, "    lalt, alt: '%s'\n", UnicodeEscape(key.Alt))
		fmt.Fprintf(&b, "    sym: '%s'\n", UnicodeEscape(key.Sym))
		b.WriteString("}\n\n")
	}
	return b.String(), nil
}

// GenerateFile renders the overlay and writes it to outputDir/filename,
// creating outputDir if needed. It returns the written path.
func (g *Generator) GenerateFile(locale, layoutName, filename, outputDir string) (string, error) {
	if filename == "" {
		return "", Fatalf("no output filename for %s %s", locale, layoutName)
	}
	content, err := g.Render(locale, layoutName)
	if err != nil {
		return "", err
	}
	mode := g.DirMode
	if mode == 0 {
		mode = 0755
	}
	err = os.MkdirAll(outputDir, mode)
	if err != nil {
		return "", Fatal(err)
	}
	path := filepath.Join(outputDir, filename)
	err = os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		return "", Fatal(err)
	}
	if g.verbose {
		log.Printf("wrote %s (%d bytes)\n", path, len(content))
	}
	return path, nil
}

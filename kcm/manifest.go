package kcm

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	ColumnLocale = "Locale"
	ColumnQWERTY = "QWERTY_KCM"
	ColumnAZERTY = "AZERTY_KCM"
	ColumnQWERTZ = "QWERTZ_KCM"
)

var layoutColumns = map[string]string{
	QWERTY: ColumnQWERTY,
	AZERTY: ColumnAZERTY,
	QWERTZ: ColumnQWERTZ,
}

type ManifestRow struct {
	Locale string
	// Filenames is keyed by layout type; an empty value means no file.
	Filenames map[string]string
}

type ManifestFile struct {
	Layout   string
	Filename string
}

// Files returns the requested outputs of the row in QWERTY, AZERTY, QWERTZ order.
func (r ManifestRow) Files() []ManifestFile {
	files := []ManifestFile{}
	for _, layout := range LayoutTypes {
		if filename := r.Filenames[layout]; filename != "" {
			files = append(files, ManifestFile{Layout: layout, Filename: filename})
		}
	}
	return files
}

func ReadManifest(path string) ([]ManifestRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Fatal(err)
	}
	defer f.Close()
	return ParseManifest(f)
}

// ParseManifest reads a header-keyed CSV manifest.
func ParseManifest(r io.Reader) ([]ManifestRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, Fatal(err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty manifest", ErrManifestHeader)
	}
	columns := make(map[string]int)
	for i, name := range records[0] {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[strings.TrimSpace(name)] = i
	}
	localeColumn, ok := columns[ColumnLocale]
	if !ok {
		return nil, fmt.Errorf("%w: missing column '%s'", ErrManifestHeader, ColumnLocale)
	}
	field := func(record []string, column string) string {
		i, ok := columns[column]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	rows := []ManifestRow{}
	for _, record := range records[1:] {
		if localeColumn >= len(record) {
			continue
		}
		row := ManifestRow{
			Locale:    strings.TrimSpace(record[localeColumn]),
			Filenames: make(map[string]string),
		}
		for layout, column := range layoutColumns {
			row.Filenames[layout] = field(record, column)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

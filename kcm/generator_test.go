package kcm

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testGenerator() *Generator {
	return &Generator{Author: "Test Author (example.org)", DirMode: 0755}
}

func TestRenderHeader(t *testing.T) {
	text, err := testGenerator().Render("ru", QWERTY)
	require.Nil(t, err)
	header := "#\n# Russian for reduced physical keyboard\n# Test Author (example.org)\n#\n\ntype OVERLAY\n\n### ROW1\nkey Q {\n"
	require.True(t, strings.HasPrefix(text, header), text[:len(header)])

	text, err = (&Generator{}).Render("xx", QWERTY)
	require.Nil(t, err)
	require.True(t, strings.HasPrefix(text, "#\n# xx for reduced physical keyboard\n#\n\ntype OVERLAY\n\n"))
}

func TestRenderRussianQ(t *testing.T) {
	text, err := testGenerator().Render("ru", QWERTY)
	require.Nil(t, err)
	block := "key Q {\n" +
		"    label: 'Q'\n" +
		"    base: '" + esc("0439") + "'\n" +
		"    shift, capslock: '" + esc("0419") + "'\n" +
		"    lalt, alt: '0'\n" +
		"    sym: '~'\n" +
		"}\n\n"
	require.Contains(t, text, block)
}

func TestRenderRows(t *testing.T) {
	text, err := testGenerator().Render("de", QWERTZ)
	require.Nil(t, err)
	require.Equal(t, 26, strings.Count(text, "\nkey "))
	row1 := strings.Index(text, "### ROW1\n")
	row2 := strings.Index(text, "### ROW2\n")
	row3 := strings.Index(text, "### ROW3\n")
	require.True(t, row1 > 0 && row1 < row2 && row2 < row3)
	require.True(t, strings.HasSuffix(text, "}\n\n"))
	// alt and sym are escaped like base and shift
	require.Contains(t, text, "    sym: '"+esc("00ab")+"'\n")
}

func TestKeysUseBaseLabels(t *testing.T) {
	base, err := GetLayout(QWERTY)
	require.Nil(t, err)
	g := testGenerator()
	for _, name := range LayoutNames() {
		physical, err := GetLayout(name)
		require.Nil(t, err)
		keys, err := g.Keys("ru", name)
		require.Nil(t, err)
		require.Len(t, keys, 26)
		for _, key := range keys {
			require.Equal(t, base[key.Code], key.Label)
			require.Equal(t, physical[key.Code], key.Physical)
		}
	}
}

func TestKeysAzerty(t *testing.T) {
	keys, err := testGenerator().Keys("ru", AZERTY)
	require.Nil(t, err)
	key := keys[0]
	require.Equal(t, "ROW1", key.Row)
	require.Equal(t, KEY_Q, key.Code)
	require.Equal(t, "Q", key.Label)
	require.Equal(t, "A", key.Physical)
	require.Equal(t, "ф", key.Base)
	require.Equal(t, "#", key.Alt)
	require.Equal(t, "_", key.Sym)
}

func TestKeysLatinFallback(t *testing.T) {
	keys, err := testGenerator().Keys("en_US", QWERTZ)
	require.Nil(t, err)
	for _, key := range keys {
		require.Equal(t, strings.ToLower(key.Physical), key.Base)
		require.Equal(t, strings.ToUpper(key.Physical), key.Shift)
		require.Equal(t, SourceLatin, key.Source)
	}
}

func TestKeysFullTable(t *testing.T) {
	g := testGenerator()
	for _, locale := range CharacterTableNames() {
		table, _ := CharacterTable(locale)
		text, err := g.Render(locale, QWERTY)
		require.Nil(t, err)
		for label, pair := range table {
			require.Contains(t, text, "key "+label+" {\n    label: '"+label+"'\n    base: '"+UnicodeEscape(pair.Base)+"'\n    shift, capslock: '"+UnicodeEscape(pair.Shift)+"'\n")
		}
	}
}

func TestUnknownLayout(t *testing.T) {
	_, err := testGenerator().Render("ru", "COLEMAK")
	require.True(t, errors.Is(err, ErrUnknownLayout))
}

func TestGenerateFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "kcm")
	g := testGenerator()
	path, err := g.GenerateFile("el", QWERTY, "keyboard_layout_greek.kcm", dir)
	require.Nil(t, err)
	require.Equal(t, filepath.Join(dir, "keyboard_layout_greek.kcm"), path)
	data, err := os.ReadFile(path)
	require.Nil(t, err)
	expected, err := g.Render("el", QWERTY)
	require.Nil(t, err)
	require.Equal(t, expected, string(data))
}

func TestGenerateFileNoFilename(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	_, err := testGenerator().GenerateFile("ru", QWERTY, "", dir)
	require.NotNil(t, err)
	_, err = os.Stat(dir)
	require.True(t, os.IsNotExist(err))
}

func TestGenerateFileUnwritable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	err := os.WriteFile(blocker, []byte("x"), 0600)
	require.Nil(t, err)
	_, err = testGenerator().GenerateFile("ru", QWERTY, "ru.kcm", blocker)
	require.NotNil(t, err)
}

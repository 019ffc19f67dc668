package kcm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadManifest(t *testing.T) {
	rows, err := ReadManifest("testdata/language_list.csv")
	require.Nil(t, err)
	require.Len(t, rows, 5)
	require.Equal(t, "ru", rows[0].Locale)
	require.Equal(t, []ManifestFile{{QWERTY, "keyboard_layout_russian.kcm"}}, rows[0].Files())
	require.Equal(t, []ManifestFile{
		{QWERTY, "keyboard_layout_armenian.kcm"},
		{QWERTZ, "keyboard_layout_armenian_qwertz.kcm"},
	}, rows[3].Files())
	require.Empty(t, rows[4].Files())
}

func TestParseManifestHeader(t *testing.T) {
	input := "\ufeffLocale , QWERTZ_KCM,Notes\nde, de.kcm ,ignored\nat,\n"
	rows, err := ParseManifest(strings.NewReader(input))
	require.Nil(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "de", rows[0].Locale)
	require.Equal(t, []ManifestFile{{QWERTZ, "de.kcm"}}, rows[0].Files())
	require.Equal(t, "at", rows[1].Locale)
	require.Empty(t, rows[1].Files())
}

func TestParseManifestMissingLocale(t *testing.T) {
	_, err := ParseManifest(strings.NewReader("Language,QWERTY_KCM\nru,ru.kcm\n"))
	require.NotNil(t, err)
	require.True(t, errors.Is(err, ErrManifestHeader))

	_, err = ParseManifest(strings.NewReader(""))
	require.True(t, errors.Is(err, ErrManifestHeader))
}

func TestReadManifestMissingFile(t *testing.T) {
	_, err := ReadManifest("testdata/nonexistent.csv")
	require.NotNil(t, err)
}

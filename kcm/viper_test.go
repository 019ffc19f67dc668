package kcm

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func initTestConfig(t *testing.T) {
	Init("kcmgen", Version, filepath.Join("testdata", "config.yaml"))
	ViperInit()
}

func TestViperConfig(t *testing.T) {
	initTestConfig(t)
	require.Equal(t, "Test Author (example.org)", ViperGetString("author"))
	require.True(t, ViperGetBool("verbose"))
	require.Equal(t, uint32(0750), DirMode())
	require.Equal(t, ".", ViperGetString("output_dir"))
}

func TestDirModeInvalid(t *testing.T) {
	initTestConfig(t)
	ViperSet("dir_mode", "rwx")
	defer ViperSet("dir_mode", "0750")
	require.Equal(t, uint32(0755), DirMode())
}

func TestNewGeneratorFromConfig(t *testing.T) {
	initTestConfig(t)
	g := NewGenerator()
	require.Equal(t, "Test Author (example.org)", g.Author)
	require.True(t, g.verbose)
}

func TestDefaultHeader(t *testing.T) {
	Init("kcmgen", Version, filepath.Join("testdata", "defaults.yaml"))
	ViperInit()
	g := NewGenerator()
	require.Equal(t, DefaultAuthor, g.Author)
	text, err := g.Render("ru", QWERTY)
	require.Nil(t, err)
	header := "#\n# Russian for reduced physical keyboard\n# Gor Mirzoyan (xwtk.cloud).\n#\n\ntype OVERLAY\n\n### ROW1\n"
	require.True(t, strings.HasPrefix(text, header))
}

package kcm

import (
	"strconv"
)

const Version = "0.1.0"

const DefaultAuthor = "Gor Mirzoyan (xwtk.cloud)."
const DefaultDirMode = "0755"

// ViperInit sets the config defaults; call after Init or CobraInit.
func ViperInit() {
	ViperSetDefault("author", DefaultAuthor)
	ViperSetDefault("dir_mode", DefaultDirMode)
	ViperSetDefault("output_dir", ".")
}

// DirMode parses the configured octal directory mode, falling back to 0755.
func DirMode() uint32 {
	value := ViperGetString("dir_mode")
	if value == "" {
		value = DefaultDirMode
	}
	mode, err := strconv.ParseUint(value, 8, 32)
	if err != nil {
		Warning("invalid dir_mode '%s', using %s", value, DefaultDirMode)
		return 0755
	}
	return uint32(mode)
}

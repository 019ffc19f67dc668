// go-common local proxy functions

package kcm

import (
	common "github.com/rstms/go-common"
)

func Init(name, version, configFile string) {
	common.Init(name, version, configFile)
}

func FormatJSON(v any) string {
	return common.FormatJSON(v)
}

func Fatal(err error) error {
	return common.Fatal(err)
}

func Fatalf(format string, args ...interface{}) error {
	return common.Fatalf(format, args...)
}

func Warning(format string, args ...interface{}) {
	common.Warning(format, args...)
}

func ViperGetBool(key string) bool {
	return common.ViperGetBool(key)
}

func ViperGetString(key string) string {
	return common.ViperGetString(key)
}

func ViperSet(key string, value any) {
	common.ViperSet(key, value)
}

func ViperSetDefault(key string, value any) {
	common.ViperSetDefault(key, value)
}

// go-common local proxy functions

package cmd

import (
	common "github.com/rstms/go-common"
)

type CobraCommand interface {
}

func OptionSwitch(cobraCmd CobraCommand, name, flag, description string) {
	common.OptionSwitch(cobraCmd, name, flag, description)
}

func OptionString(cobraCmd CobraCommand, name, flag, defaultValue, description string) {
	common.OptionString(cobraCmd, name, flag, defaultValue, description)
}

func CobraAddCommand(cobraRootCmd, parentCmd, cobraCmd CobraCommand) {
	common.CobraAddCommand(cobraRootCmd, parentCmd, cobraCmd)
}

func CobraInit(cobraRootCmd CobraCommand) {
	common.CobraInit(cobraRootCmd)
}

func FormatJSON(v any) string {
	return common.FormatJSON(v)
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

package kcm

import (
	"gopkg.in/yaml.v3"
)

func FormatYAML(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", Fatal(err)
	}
	return string(data), nil
}

package kcm

import (
	"fmt"
	"sort"
	"strings"
)

// Linux input key codes for the letter keys of a reduced keyboard.
const (
	KEY_Q = 16
	KEY_W = 17
	KEY_E = 18
	KEY_R = 19
	KEY_T = 20
	KEY_Y = 21
	KEY_U = 22
	KEY_I = 23
	KEY_O = 24
	KEY_P = 25

	KEY_A = 30
	KEY_S = 31
	KEY_D = 32
	KEY_F = 33
	KEY_G = 34
	KEY_H = 35
	KEY_J = 36
	KEY_K = 37
	KEY_L = 38

	KEY_Z = 44
	KEY_X = 45
	KEY_C = 46
	KEY_V = 47
	KEY_B = 48
	KEY_N = 49
	KEY_M = 50
)

const (
	QWERTY = "QWERTY"
	AZERTY = "AZERTY"
	QWERTZ = "QWERTZ"
)

// LayoutTypes is the order layouts are processed in a manifest row.
var LayoutTypes = []string{QWERTY, AZERTY, QWERTZ}

type Layout map[int]string

var physicalLayouts = map[string]Layout{
	QWERTY: {
		KEY_Q: "Q", KEY_W: "W", KEY_E: "E", KEY_R: "R", KEY_T: "T", KEY_Y: "Y", KEY_U: "U", KEY_I: "I", KEY_O: "O", KEY_P: "P",
		KEY_A: "A", KEY_S: "S", KEY_D: "D", KEY_F: "F", KEY_G: "G", KEY_H: "H", KEY_J: "J", KEY_K: "K", KEY_L: "L",
		KEY_Z: "Z", KEY_X: "X", KEY_C: "C", KEY_V: "V", KEY_B: "B", KEY_N: "N", KEY_M: "M",
	},
	AZERTY: {
		KEY_Q: "A", KEY_W: "Z", KEY_E: "E", KEY_R: "R", KEY_T: "T", KEY_Y: "Y", KEY_U: "U", KEY_I: "I", KEY_O: "O", KEY_P: "P",
		KEY_A: "Q", KEY_S: "S", KEY_D: "D", KEY_F: "F", KEY_G: "G", KEY_H: "H", KEY_J: "J", KEY_K: "K", KEY_L: "L",
		KEY_Z: "W", KEY_X: "X", KEY_C: "C", KEY_V: "V", KEY_B: "B", KEY_N: "N", KEY_M: "M",
	},
	QWERTZ: {
		KEY_Q: "Q", KEY_W: "W", KEY_E: "E", KEY_R: "R", KEY_T: "T", KEY_Y: "Z", KEY_U: "U", KEY_I: "I", KEY_O: "O", KEY_P: "P",
		KEY_A: "A", KEY_S: "S", KEY_D: "D", KEY_F: "F", KEY_G: "G", KEY_H: "H", KEY_J: "J", KEY_K: "K", KEY_L: "L",
		KEY_Z: "Y", KEY_X: "X", KEY_C: "C", KEY_V: "V", KEY_B: "B", KEY_N: "N", KEY_M: "M",
	},
}

// The keypad reports QWERTY codes to the system, so block labels always
// come from this layout.
const BaseLayout = QWERTY

type Row struct {
	Name  string
	Codes []int
}

var rowGroupings = []Row{
	{"ROW1", []int{KEY_Q, KEY_W, KEY_E, KEY_R, KEY_T, KEY_Y, KEY_U, KEY_I, KEY_O, KEY_P}},
	{"ROW2", []int{KEY_A, KEY_S, KEY_D, KEY_F, KEY_G, KEY_H, KEY_J, KEY_K, KEY_L}},
	{"ROW3", []int{KEY_Z, KEY_X, KEY_C, KEY_V, KEY_B, KEY_N, KEY_M}},
}

// LayoutName returns the canonical name for a case-insensitive layout name.
func LayoutName(name string) (string, error) {
	canonical := strings.ToUpper(strings.TrimSpace(name))
	if _, ok := physicalLayouts[canonical]; !ok {
		return "", fmt.Errorf("%w: '%s'", ErrUnknownLayout, name)
	}
	return canonical, nil
}

// GetLayout returns a copy of the named physical layout.
func GetLayout(name string) (Layout, error) {
	canonical, err := LayoutName(name)
	if err != nil {
		return nil, err
	}
	layout := make(Layout, len(physicalLayouts[canonical]))
	for code, label := range physicalLayouts[canonical] {
		layout[code] = label
	}
	return layout, nil
}

func LayoutNames() []string {
	names := make([]string, 0, len(physicalLayouts))
	for name := range physicalLayouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rows returns a copy of the row groupings in output order.
func Rows() []Row {
	rows := make([]Row, len(rowGroupings))
	for i, row := range rowGroupings {
		rows[i] = Row{Name: row.Name, Codes: append([]int{}, row.Codes...)}
	}
	return rows
}

/*
Copyright © 2025 Matt Krueger <mkrueger@rstms.net>
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

 1. Redistributions of source code must retain the above copyright notice,
    this list of conditions and the following disclaimer.

 2. Redistributions in binary form must reproduce the above copyright notice,
    this list of conditions and the following disclaimer in the documentation
    and/or other materials provided with the distribution.

 3. Neither the name of the copyright holder nor the names of its contributors
    may be used to endorse or promote products derived from this software
    without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
POSSIBILITY OF SUCH DAMAGE.
*/
package cmd

import (
	"fmt"
	"sort"

	"github.com/rstms/kcmgen/kcm"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show layouts|rows|locales|tables|table|keys [NAME|LOCALE [LAYOUT]]",
	Short: "display built-in tables",
	Long: `
Display the built-in tables:

  layouts               physical layouts (key code to letter label)
  rows                  row groupings in output order
  locales               locale display names
  tables                locales with a character table
  table NAME            one character table merged with the alt/sym table
  keys LOCALE [LAYOUT]  resolved characters for each key
`,
	Args: cobra.RangeArgs(1, 3),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "layouts":
			showLayouts(cmd)
		case "rows":
			showRows(cmd)
		case "locales":
			showLocales(cmd)
		case "tables":
			names := kcm.CharacterTableNames()
			Output(cmd, names, func() []string { return names })
		case "table":
			if len(args) < 2 {
				cobra.CheckErr(fmt.Errorf("table requires NAME"))
			}
			showTable(cmd, args[1])
		case "keys":
			if len(args) < 2 {
				cobra.CheckErr(fmt.Errorf("keys requires LOCALE"))
			}
			layout := kcm.QWERTY
			if len(args) > 2 {
				layout = args[2]
			}
			showKeys(cmd, args[1], layout)
		default:
			cobra.CheckErr(fmt.Errorf("unknown table: '%s'", args[0]))
		}
	},
}

func showLayouts(cmd *cobra.Command) {
	layouts := make(map[string]kcm.Layout)
	for _, name := range kcm.LayoutNames() {
		layout, err := kcm.GetLayout(name)
		cobra.CheckErr(err)
		layouts[name] = layout
	}
	Output(cmd, layouts, func() []string {
		lines := []string{}
		for _, name := range kcm.LayoutNames() {
			line := name
			for _, row := range kcm.Rows() {
				line += " "
				for _, code := range row.Codes {
					line += layouts[name][code]
				}
			}
			lines = append(lines, line)
		}
		return lines
	})
}

func showRows(cmd *cobra.Command) {
	rows := kcm.Rows()
	Output(cmd, rows, func() []string {
		lines := []string{}
		for _, row := range rows {
			lines = append(lines, fmt.Sprintf("%s %v", row.Name, row.Codes))
		}
		return lines
	})
}

func showLocales(cmd *cobra.Command) {
	names := kcm.LanguageNames()
	Output(cmd, names, func() []string {
		locales := make([]string, 0, len(names))
		for locale := range names {
			locales = append(locales, locale)
		}
		sort.Strings(locales)
		lines := []string{}
		for _, locale := range locales {
			lines = append(lines, fmt.Sprintf("%-14s %s", locale, names[locale]))
		}
		return lines
	})
}

type tableEntry struct {
	kcm.CharPair `yaml:",inline"`
	kcm.AltSym   `yaml:",inline"`
}

func showTable(cmd *cobra.Command, name string) {
	table, ok := kcm.CharacterTable(name)
	if !ok {
		cobra.CheckErr(fmt.Errorf("no character table: '%s'", name))
	}
	entries := make(map[string]tableEntry)
	labels := []string{}
	for label, pair := range table {
		altSym, _ := kcm.AltSymFor(label)
		entries[label] = tableEntry{pair, altSym}
		labels = append(labels, label)
	}
	sort.Strings(labels)
	Output(cmd, entries, func() []string {
		lines := []string{}
		for _, label := range labels {
			e := entries[label]
			lines = append(lines, fmt.Sprintf("%s base=%s shift=%s alt=%s sym=%s", label, e.Base, e.Shift, e.Alt, e.Sym))
		}
		return lines
	})
}

func showKeys(cmd *cobra.Command, locale, layout string) {
	if !kcm.HasCharacterTable(locale) {
		Warning("no character table for '%s', using latin fallback", locale)
	}
	keys, err := kcm.NewGenerator().Keys(locale, layout)
	cobra.CheckErr(err)
	Output(cmd, keys, func() []string {
		lines := []string{}
		for _, key := range keys {
			lines = append(lines, fmt.Sprintf("%s %2d %s %s base=%s shift=%s alt=%s sym=%s (%s)",
				key.Row, key.Code, key.Label, key.Physical, key.Base, key.Shift, key.Alt, key.Sym, key.Source))
		}
		return lines
	})
}

func init() {
	CobraAddCommand(rootCmd, rootCmd, showCmd)
}

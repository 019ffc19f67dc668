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
	"os"

	"github.com/rstms/kcmgen/kcm"
	"github.com/spf13/cobra"
)

var OutputJSON bool
var OutputText bool
var OutputYAML bool

var rootCmd = &cobra.Command{
	Version: kcm.Version,
	Use:     "kcmgen",
	Short:   "generate KCM overlays for reduced physical keyboards",
	Long: `
Generate keyboard character map (KCM) overlay files for reduced physical
keyboards.  Each overlay maps the letter keys of a QWERTY, AZERTY or QWERTZ
keypad to the base, shift, alt and sym characters of a locale.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		OutputJSON = true
		OutputText = false
		OutputYAML = false
		switch {
		case ViperGetBool("text"):
			OutputText = true
			OutputJSON = false
		case ViperGetBool("yaml"):
			OutputYAML = true
			OutputJSON = false
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	CobraInit(rootCmd)
	OptionSwitch(rootCmd, "json", "", "format output as JSON (default)")
	OptionSwitch(rootCmd, "text", "", "format output as text")
	OptionSwitch(rootCmd, "yaml", "", "format output as YAML")
	kcm.ViperInit()
}

// Output writes v in the selected format; lines is used for --text.
func Output(cmd *cobra.Command, v any, lines func() []string) {
	out := cmd.OutOrStdout()
	switch {
	case OutputText:
		for _, line := range lines() {
			fmt.Fprintln(out, line)
		}
	case OutputYAML:
		text, err := kcm.FormatYAML(v)
		cobra.CheckErr(err)
		fmt.Fprint(out, text)
	default:
		fmt.Fprintln(out, FormatJSON(v))
	}
}

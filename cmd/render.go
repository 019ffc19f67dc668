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
	"path/filepath"

	"github.com/rstms/kcmgen/kcm"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render LOCALE [LAYOUT]",
	Short: "render a single KCM overlay",
	Long: `
Render the KCM overlay for LOCALE on the physical LAYOUT (QWERTY, AZERTY or
QWERTZ; default QWERTY) to stdout, or to the file named by --output.
`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		locale := args[0]
		layout := kcm.QWERTY
		if len(args) > 1 {
			layout = args[1]
		}
		g := kcm.NewGenerator()
		output := ViperGetString("render.output")
		if output != "" {
			_, err := g.GenerateFile(locale, layout, filepath.Base(output), filepath.Dir(output))
			cobra.CheckErr(err)
			return
		}
		text, err := g.Render(locale, layout)
		cobra.CheckErr(err)
		fmt.Fprint(cmd.OutOrStdout(), text)
	},
}

func init() {
	CobraAddCommand(rootCmd, rootCmd, renderCmd)
	OptionString(renderCmd, "output", "o", "", "output filename")
}

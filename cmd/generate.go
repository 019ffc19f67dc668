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
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rstms/kcmgen/kcm"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate LANGUAGE_LIST OUTPUT_DIR",
	Short: "generate KCM files listed in a CSV manifest",
	Long: `
Read the CSV manifest LANGUAGE_LIST and write one KCM overlay into OUTPUT_DIR
for each non-empty filename cell.  The manifest header must name a Locale
column; the QWERTY_KCM, AZERTY_KCM and QWERTZ_KCM columns hold the output
filename for that physical layout, or nothing.

An OUTPUT_DIR of '-' selects the configured output_dir.

With --watch the manifest is regenerated each time it changes, until
interrupted.
`,
	Aliases: []string{"gen"},
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		manifest := args[0]
		outputDir := args[1]
		if outputDir == "-" {
			outputDir = ViperGetString("output_dir")
		}
		batch := kcm.NewBatch(cmd.OutOrStdout())
		if ViperGetBool("generate.watch") {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			err := kcm.Watch(ctx, manifest, outputDir, batch, nil)
			cobra.CheckErr(err)
			return
		}
		result, err := batch.Run(manifest, outputDir)
		cobra.CheckErr(err)
		if ViperGetBool("verbose") {
			log.Printf("wrote %d files for %d locales\n", len(result.Files), result.Locales)
		}
	},
}

func init() {
	CobraAddCommand(rootCmd, rootCmd, generateCmd)
	OptionSwitch(generateCmd, "watch", "w", "regenerate when the manifest changes")
}

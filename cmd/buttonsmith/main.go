// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "buttonsmith",
	Short: "Buttonsmith - design a button, export it anywhere",
	Long: `Buttonsmith turns a button style into CSS, HTML and framework snippets.

Styles can start from a preset, a share token or a plain-language prompt,
and the server exposes the same engine over HTTP with a live preview socket.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

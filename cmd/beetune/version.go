package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the beetune version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Fprintf(os.Stdout, "beetune %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

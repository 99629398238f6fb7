package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set via -ldflags at release build time; a source build reports (devel).
var (
	version = "(devel)"
	commit  = ""
	date    = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("mymath", version)
		if commit != "" {
			fmt.Println("  commit:", commit)
		}
		if date != "" {
			fmt.Println("  built:", date)
		}
	},
}

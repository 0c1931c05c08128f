package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nanux-os/nsh/builtins"
)

// builtinsCmd lists the commands the shell handles itself.
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin commands of the shell.",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, e := range builtins.List() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", e.Name, e.Short)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nanux-os/nsh/core/record"
)

// playCmd replays a recorded session.
var playCmd = &cobra.Command{
	Use:   "play RECORDING",
	Short: "Play a recorded interactive session.",
	Long:  `Plays a recorded interactive session back to the current terminal.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		fd, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer fd.Close()

		return record.Replay(fd, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}

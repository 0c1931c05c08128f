package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nanux-os/nsh/core/logger"
	"github.com/nanux-os/nsh/core/record"
	"github.com/nanux-os/nsh/core/shell"
	"github.com/nanux-os/nsh/core/sys"
)

// runCmd starts the shell directly on the host terminal, in raw mode.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the shell interactively on this terminal.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		host, err := sys.NewHostGateway()
		if err != nil {
			return err
		}

		restore, err := sys.MakeRaw(sys.Stdin)
		if err != nil {
			return err
		}
		defer restore()
		// The exit builtin leaves through the gateway, not through this
		// function, so the gateway restores the terminal too.
		host.OnExit = restore

		var gw sys.Gateway = host
		if configuration.RecordSessions {
			name := fmt.Sprintf("%s.log", time.Now().Format(time.RFC3339))
			fd, err := configuration.CreateSessionLog(name)
			if err != nil {
				return err
			}
			defer fd.Close()
			gw = record.Wrap(gw, fd)
		}

		appLog, err := configuration.OpenAppLog()
		if err != nil {
			return err
		}
		defer appLog.Close()

		slog := logger.NewJSONLinesLogger(appLog).NewSession()
		slog.SessionStart("console", "")

		sh := shell.New(gw, configuration, slog)
		sh.Console().Colors = true
		sh.Run()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	stdpath "path"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gliderlabs/ssh"
	"github.com/juju/ratelimit"
	"github.com/spf13/cobra"
	gossh "golang.org/x/crypto/ssh"

	"github.com/nanux-os/nsh/core/config"
	"github.com/nanux-os/nsh/core/logger"
	"github.com/nanux-os/nsh/core/record"
	"github.com/nanux-os/nsh/core/shell"
	"github.com/nanux-os/nsh/core/sys"
)

// serveCmd exposes the shell to SSH clients. There is no kernel behind
// these sessions: spawns are simulated against the configured program
// list so the whole loop can be demoed and tested over the network.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the shell to SSH clients for demos and testing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		log.Println("Initializing server...")

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		keyPem, err := configuration.PrivateKeyPem()
		if err != nil {
			return err
		}
		signer, err := gossh.ParsePrivateKey(keyPem)
		if err != nil {
			return err
		}

		appLog, err := configuration.OpenAppLog()
		if err != nil {
			return err
		}
		defer appLog.Close()
		events := logger.NewJSONLinesLogger(appLog)

		// PID 1 is init, PID 2 the first shell; spawned programs count
		// up from there.
		var nextPID int64 = 2

		server := &ssh.Server{
			Addr: fmt.Sprintf(":%d", configuration.SSHPort),
			Handler: func(s ssh.Session) {
				handleSession(s, configuration, events, &nextPID)
			},
		}
		server.AddHostKey(signer)

		go func() {
			log.Printf("- Starting SSH server on %s\n", server.Addr)
			if err := server.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
				log.Fatal(err)
			}
		}()

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigs
		log.Printf("Got signal %q, terminating...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server shutdown failed: %s", err)
		}
		log.Print("Server exited")
		return nil
	},
}

func handleSession(s ssh.Session, cfg *config.Configuration, events *logger.Logger, nextPID *int64) {
	slog := events.NewSession()
	slog.SessionStart("ssh", s.RemoteAddr().String())

	var out io.Writer = s
	if cfg.ConsoleBaud > 0 {
		// A serial line moves roughly baud/10 bytes per second: 8 data
		// bits plus framing.
		rate := float64(cfg.ConsoleBaud) / 10
		out = ratelimit.Writer(s, ratelimit.NewBucketWithRate(rate, int64(rate)))
	}

	exitCode := 0
	gw := sys.Gateway(&sys.StreamGateway{
		In:     s,
		Out:    out,
		ErrOut: s.Stderr(),
		SpawnFn: func(binPath string) int {
			name := stdpath.Base(binPath)
			for _, prog := range cfg.Programs {
				if prog.Name == name {
					return int(atomic.AddInt64(nextPID, 1))
				}
			}
			return -1
		},
		ExitFn: func(code int) {
			exitCode = code
		},
	})

	if cfg.RecordSessions {
		name := fmt.Sprintf("%s.log", time.Now().Format(time.RFC3339Nano))
		if fd, err := cfg.CreateSessionLog(name); err == nil {
			defer fd.Close()
			gw = record.Wrap(gw, fd)
		} else {
			log.Printf("session recording disabled: %v", err)
		}
	}

	sh := shell.New(gw, cfg, slog)
	_, _, isPty := s.Pty()
	sh.Console().Colors = isPty

	// Exit diverges via Goexit, so the shell needs its own goroutine.
	done := make(chan struct{})
	go func() {
		defer close(done)
		sh.Run()
	}()
	<-done

	s.Exit(exitCode)
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

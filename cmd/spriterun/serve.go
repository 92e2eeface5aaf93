package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sprite-run/internal/platform/tui"
	"github.com/vovakirdan/sprite-run/internal/platform/web"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve Sprite Run over SSH and WebSocket",
	Long: `Start an SSH server and an HTTP server for remote play.

Each SSH connection and each WebSocket connection plays its own game.
All players share the run history and the persisted high score.
Pass an empty address to disable a server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.spriterun/host_key

Endpoints:
  /ws       - WebSocket game protocol
  /healthz  - Liveness check

Examples:
  spriterun serve                      # SSH on :23234, HTTP on :8080
  spriterun serve --ssh :2222          # SSH on port 2222
  spriterun serve --http ""            # SSH only
  spriterun serve --db ./scores.db     # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP/WebSocket server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagSSHAddr == "" && flagHTTPAddr == "" {
		return errors.New("nothing to serve: both --ssh and --http are empty")
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "spriterun")
	if err != nil {
		return err
	}

	store, scores := openScores(logger)
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var servers []func(context.Context) error

	if flagSSHAddr != "" {
		sshCfg := tui.DefaultSSHServerConfig()
		sshCfg.Address = flagSSHAddr
		sshCfg.HostKeyPath = flagHostKey
		sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
		sshCfg.TickRate = flagFPS
		sshCfg.Settings = settings

		sshServer, err := tui.NewSSHServer(sshCfg, store, scores, logger.WithPrefix("ssh"))
		if err != nil {
			return err
		}
		servers = append(servers, sshServer.Serve)
		if _, port, err := net.SplitHostPort(sshServer.Addr()); err == nil {
			fmt.Printf("Connect with: ssh localhost -p %s\n", port)
		}
	}

	if flagHTTPAddr != "" {
		handler := web.NewHandler(web.HandlerConfig{
			Settings: settings,
			TickRate: flagFPS,
			Scores:   scores,
			History:  store,
			Logger:   logger.WithPrefix("http"),
		})
		servers = append(servers, web.NewServer(flagHTTPAddr, handler).ListenAndServe)
	}
	fmt.Println("Press Ctrl+C to stop")

	// A failing server stops the others
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, len(servers))
	for _, serve := range servers {
		go func() {
			err := serve(ctx)
			cancel()
			errCh <- err
		}()
	}

	var errs []error
	for range servers {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

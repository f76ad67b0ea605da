package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/theirongolddev/growthsim/internal/config"
	"github.com/theirongolddev/growthsim/internal/server"

	"github.com/spf13/cobra"
)

var (
	flagServeAddr       string
	flagServeRunsBuffer int
	flagServeDebug      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulator over a local HTTP API with an SSE run stream",
	RunE:  runServe,
}

var serveStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Probe a running API server",
	RunE:  runServeStatus,
}

func init() {
	serveCmd.PersistentFlags().StringVar(&flagServeAddr, "addr", "", "HTTP listen address (default: GROWTHSIM_SERVER_ADDR or config)")
	serveCmd.Flags().IntVar(&flagServeRunsBuffer, "runs-buffer", 0, "Max recent runs retained (default: config runs_buffer)")
	serveCmd.Flags().BoolVar(&flagServeDebug, "debug", false, "Log at debug level")

	serveCmd.AddCommand(serveStatusCmd)
	rootCmd.AddCommand(serveCmd)
}

// serveAddr resolves the listen address: flag, then env, then config.
func serveAddr(cfg config.Config) string {
	if flagServeAddr != "" {
		return flagServeAddr
	}
	return config.GetServerAddr(cfg)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	level := slog.LevelInfo
	if flagServeDebug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	runsBuffer := cfg.Server.RunsBuffer
	if flagServeRunsBuffer > 0 {
		runsBuffer = flagServeRunsBuffer
	}

	addr := serveAddr(cfg)
	svc := server.New(server.Config{
		Addr:       addr,
		RunsBuffer: runsBuffer,
		Logger:     logger,
	})

	infof("  growthsim API listening on http://%s\n", addr)
	infof("  Try: curl 'http://%s/v1/simulate?balance=20000&contribution=700&rate=0.06&years=15'\n", addr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runServeStatus(cmd *cobra.Command, _ []string) error {
	addr := serveAddr(loadConfig())
	fmt.Printf("  Address: http://%s\n", addr)

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+addr+"/v1/status", nil)
	if err != nil {
		return fmt.Errorf("building status request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("  API status: unreachable (%v)\n", err)
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("  API status: HTTP %d\n", resp.StatusCode)
		return nil
	}

	var st server.Status
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		fmt.Printf("  API status: malformed response (%v)\n", err)
		return nil
	}

	fmt.Printf("  Started:     %s\n", st.StartedAt.Local().Format(time.RFC3339))
	fmt.Printf("  Runs served: %d\n", st.RunCount)
	fmt.Printf("  Buffered:    %d\n", st.BufferedRuns)
	fmt.Printf("  Subscribers: %d\n", st.SubscriberCount)
	return nil
}

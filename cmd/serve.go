package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/digestview/internal/server"
	"github.com/ziadkadry99/digestview/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local digest viewer",
	Long: `Starts a local web server with the digest viewer. Every browser tab gets
its own viewing session: the calendar, the recent-dates list and the digest
panel are driven from this process over a websocket.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to the configured port)")
	serveCmd.Flags().Bool("open", false, "open the viewer in a browser")
	serveCmd.Flags().Bool("cors-all", false, "allow all CORS origins (dev mode)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	src, err := newSource(cfg)
	if err != nil {
		return err
	}

	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Port
	}
	allowAll, _ := cmd.Flags().GetBool("cors-all")

	srv := server.New(server.Config{
		Port:        port,
		Title:       cfg.Title,
		ProbeDays:   cfg.ProbeDays,
		RecentLimit: cfg.RecentLimit,
		AllowAll:    allowAll,
	}, src, newPipeline())

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	url := fmt.Sprintf("http://localhost:%d", port)
	fmt.Fprintf(os.Stderr, "digestview %s serving %q\n", Version, cfg.Title)
	fmt.Fprintf(os.Stderr, "  Digests: %s\n", describeSource(cfg))
	fmt.Fprintf(os.Stderr, "  Viewer:  %s\n", url)

	if open, _ := cmd.Flags().GetBool("open"); open {
		if err := site.OpenBrowser(url); err != nil {
			warnf("could not open a browser: %v", err)
		}
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

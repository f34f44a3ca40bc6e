package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/brochure-dev/brochure/internal/site"
	"github.com/brochure-dev/brochure/internal/watch"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site and serve it locally",
	Long:  `Builds the site and serves it on a local port. With --watch, content edits trigger a rebuild and connected browsers reload automatically.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Bool("watch", false, "rebuild on content changes and live-reload browsers")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Int("port", 0, "override the configured port")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Port
	}
	open, _ := cmd.Flags().GetBool("open")
	watchMode, _ := cmd.Flags().GetBool("watch")

	if watchMode && cfg.ContentURL != "" {
		return fmt.Errorf("--watch needs a local data_dir; remote content at %s cannot be watched", cfg.ContentURL)
	}

	store := newStore(cfg)
	builder := site.NewBuilder(store, cfg.OutputDir)
	builder.LiveReload = watchMode
	if err := builder.Build(cmd.Context()); err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var hub *site.ReloadHub
	if watchMode {
		hub = site.NewReloadHub()
		watcher := &watch.Watcher{
			Dir:      cfg.DataDir,
			Include:  cfg.Watch.Include,
			Exclude:  cfg.Watch.Exclude,
			Debounce: time.Duration(cfg.Watch.DebounceMS) * time.Millisecond,
			OnChange: func(paths []string) {
				log.Printf("content changed: %s", strings.Join(paths, ", "))
				// A fresh store per rebuild, so edited documents are re-read
				// instead of served from the previous session's cache.
				b := site.NewBuilder(newStore(cfg), cfg.OutputDir)
				b.LiveReload = true
				if err := b.Build(context.Background()); err != nil {
					log.Printf("rebuild failed: %v", err)
					return
				}
				hub.Broadcast("reload")
			},
		}
		go func() {
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("watch: %v", err)
			}
		}()
		fmt.Printf("Watching %s for content changes\n", cfg.DataDir)
	}

	srv := site.NewServer(site.ServerConfig{Port: port, SiteDir: cfg.OutputDir, Open: open}, store, hub)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	fmt.Printf("Serving at http://localhost:%d (Ctrl+C to stop)\n", port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving site: %w", err)
	}
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Dulitha99/Research-Website/internal/config"
	"github.com/Dulitha99/Research-Website/internal/contact"
	"github.com/Dulitha99/Research-Website/internal/server"
	"github.com/Dulitha99/Research-Website/internal/watch"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site locally and rebuilds on changes",
	Long: `The serve command performs an initial build, then starts a local web server
for the output directory together with the contact endpoint (/api/contact),
/healthz and /metrics. When --source points at a directory on disk, its content,
layouts, data and static directories are watched and the site is rebuilt
automatically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runServe(ctx, appConfig, log)
	},
}

func runServe(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	ctx, cancelWatch := context.WithCancel(ctx)
	defer cancelWatch()

	builder, err := newBuilder(cfg, log)
	if err != nil {
		return err
	}
	log.Info("Performing initial build")
	if _, err := builder.Run(); err != nil {
		return fmt.Errorf("initial build failed, fix the issues and try again: %w", err)
	}

	deduper, closeDeduper := newDeduper(cfg.Contact, log)
	defer closeDeduper()

	srv, err := server.New(server.Options{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		OutputDir:      cfg.OutputDir,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		TrustedProxies: cfg.Server.TrustedProxies,
		Contact: server.NewContactHandler(server.ContactOptions{
			Sender:     contact.NewSimulatedSender(cfg.Contact.SendDelay, log),
			Deduper:    deduper,
			ResetAfter: cfg.Contact.ResetAfter,
			PerMinute:  cfg.Contact.RatePerMin,
			Logger:     log,
		}),
		Logger: log,
	})
	if err != nil {
		return err
	}

	watchDone := make(chan struct{})
	if cfg.SourceDir != "" {
		w, err := watch.New(watch.Options{
			Dirs:     sourceDirs(cfg.SourceDir),
			OnChange: func() error { _, err := builder.Run(); return err },
			Logger:   log,
		})
		if err != nil {
			return err
		}
		go func() {
			defer close(watchDone)
			_ = w.Run(ctx)
		}()
	} else {
		log.Info("Serving the embedded site, live rebuild disabled")
		close(watchDone)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()
	log.Info("Serving site", zap.String("dir", cfg.OutputDir), zap.String("url", fmt.Sprintf("http://localhost:%d", cfg.Server.Port)))

	select {
	case err := <-errCh:
		cancelWatch()
		<-watchDone
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	err = srv.Shutdown(shutdownCtx)
	cancelWatch()
	<-watchDone
	return err
}

// newDeduper uses Redis when configured and falls back to memory otherwise.
func newDeduper(cfg config.ContactConfig, log *zap.Logger) (contact.Deduper, func()) {
	if cfg.RedisAddr == "" {
		return contact.NewMemoryDeduper(cfg.DedupTTL), func() {}
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
	log.Info("Using Redis for contact dedup", zap.String("addr", cfg.RedisAddr))
	return contact.NewRedisDeduper(rdb, cfg.DedupTTL, log), func() { _ = rdb.Close() }
}

func sourceDirs(root string) []string {
	return []string{
		filepath.Join(root, "content"),
		filepath.Join(root, "layouts"),
		filepath.Join(root, "data"),
		filepath.Join(root, "static"),
	}
}

func init() {
	serveCmd.Flags().String("source", "", "site source directory to build and watch (default: embedded site)")
	serveCmd.Flags().StringP("output", "o", "public", "output directory")
	serveCmd.Flags().IntP("port", "p", 1313, "port to serve on")
	rootCmd.AddCommand(serveCmd)
}

package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kawalpreet/folio/internal/contact"
	"github.com/kawalpreet/folio/internal/portfolio"
	"github.com/kawalpreet/folio/internal/server"
	"github.com/kawalpreet/folio/internal/site"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio page, contact API and live page session",
	Long: `Starts the HTTP server: the rendered page, the contact form and JSON
endpoint, static assets and the websocket page session. The content file is
reloaded when it changes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	database, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	profile, err := loadProfile(cfg)
	if err != nil {
		return err
	}
	profiles := portfolio.NewStore(profile)

	renderer, err := site.NewRenderer()
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	svc := newContactService(cfg, database)

	srv := server.New(server.Config{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		AllowAll:       cfg.Server.AllowAll,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RequestTimeout: cfg.RequestTimeout(),
	}, database)

	h := site.NewHandler(profiles, svc, renderer, cfg.Site.AssetsDir, assetFilter(cfg))
	contact.RegisterRoutes(srv.Router(), svc)
	site.RegisterRoutes(srv.Router(), h)
	h.AllowOrigins(srv.OriginAllowed)
	site.RegisterLiveRoutes(srv.LiveRouter(), h)
	srv.OnShutdown(h.Close)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "folio v%s starting on %s\n", Version, srv.Addr())
	fmt.Fprintf(os.Stderr, "  Database: %s\n", cfg.DBPath())
	fmt.Fprintf(os.Stderr, "  Sink: %s\n", cfg.Contact.Sink)
	if cfg.Site.ContentFile != "" {
		fmt.Fprintf(os.Stderr, "  Content: %s\n", cfg.Site.ContentFile)
	} else {
		fmt.Fprintln(os.Stderr, "  Content: built-in")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(ctx, cfg.ShutdownGrace())
	})
	if cfg.Site.Watch && cfg.Site.ContentFile != "" {
		g.Go(func() error {
			// The page keeps working without live reload.
			if err := portfolio.Watch(ctx, cfg.Site.ContentFile, portfolio.DefaultDebounce, profiles.Set); err != nil {
				log.Printf("portfolio: live reload disabled: %v", err)
			}
			return nil
		})
	}

	err = g.Wait()
	fmt.Fprintln(os.Stderr, "Server stopped")
	return err
}

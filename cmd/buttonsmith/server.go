package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/thatcatcamp/buttonsmith/internal/backup"
	"github.com/thatcatcamp/buttonsmith/internal/config"
	"github.com/thatcatcamp/buttonsmith/internal/db"
	"github.com/thatcatcamp/buttonsmith/internal/handlers"
	"github.com/thatcatcamp/buttonsmith/internal/logger"
	"github.com/thatcatcamp/buttonsmith/internal/middleware"
	"github.com/thatcatcamp/buttonsmith/internal/presetwatch"
	"github.com/thatcatcamp/buttonsmith/internal/tls"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start and manage the Buttonsmith HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		log, err := newLogger()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid log level: %v\n", err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := runServer(ctx, log); err != nil {
			log.Error(err, "server stopped")
			os.Exit(1)
		}
	},
}

func runServer(ctx context.Context, log *logger.Logger) error {
	if err := db.InitDB(config.GetString("database.type"), config.GetString("database.path")); err != nil {
		return err
	}

	store := presetwatch.NewStore(nil)
	presetFile := config.GetString("presets.file")
	if presetFile != "" {
		c, err := store.Load(presetFile)
		if err != nil {
			return fmt.Errorf("failed to load presets: %w", err)
		}
		log.With("presets", len(c.Names())).Info("custom presets loaded")
	}

	api := handlers.New(handlers.Options{
		DB:                db.GetDB(),
		Presets:           store,
		Log:               log.With("component", "api"),
		PublicURL:         config.GetString("server.public_url"),
		Selector:          config.GetString("render.selector"),
		PlaygroundEntries: config.GetInt("playground.max_entries"),
	})
	store.Subscribe(api.Hub().OnPresetsChanged)

	limiter := middleware.NewRateLimiter(config.GetInt("ratelimit.requests"), config.GetDuration("ratelimit.interval"))

	blocked, err := middleware.ParseBlocklist(config.GetStringSlice("security.blocked_ips"))
	if err != nil {
		return err
	}
	tlsCfg, err := tls.LoadConfig()
	if err != nil {
		return err
	}
	// with certificates managed here, plain HTTP only serves challenges and redirects
	redirectHTTPS := config.GetBool("server.redirect_https") || tlsCfg.Enabled

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	if err := r.SetTrustedProxies(config.GetStringSlice("server.trusted_proxies")); err != nil {
		return fmt.Errorf("invalid server.trusted_proxies: %w", err)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log.Zerolog()))
	r.Use(middleware.IPFilterMiddleware(blocked))
	if redirectHTTPS {
		r.Use(middleware.HTTPSRedirectMiddleware())
	}
	r.Use(middleware.SecurityHeadersMiddleware(redirectHTTPS))
	api.Register(r, middleware.RateLimitMiddleware(limiter, http.MethodPost, http.MethodDelete))

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", config.GetString("server.http_port")),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	servers := []*http.Server{httpServer}

	var tlsManager *tls.Manager
	if tlsCfg.Enabled {
		tlsManager, err = tls.NewManager(tlsCfg, log)
		if err != nil {
			return fmt.Errorf("failed to initialize TLS manager: %w", err)
		}
		httpServer.Handler = tlsManager.HTTPHandler(r)
		servers = append(servers, &http.Server{
			Addr:              fmt.Sprintf(":%s", config.GetString("server.https_port")),
			Handler:           r,
			TLSConfig:         tlsManager.GetTLSConfig(),
			ReadHeaderTimeout: 10 * time.Second,
		})
	}

	var watcher *presetwatch.Watcher
	if presetFile != "" && config.GetBool("presets.watch") {
		w, err := presetwatch.NewWatcher(store, presetFile, log)
		if err != nil {
			return err
		}
		watcher = w
	}

	g, gctx := errgroup.WithContext(ctx)

	if tlsManager != nil {
		if err := tlsManager.Manage(gctx); err != nil {
			return err
		}
	}

	for _, srv := range servers {
		g.Go(func() error {
			return serve(srv, log)
		})
	}

	g.Go(func() error {
		return limiter.Run(gctx)
	})

	if watcher != nil {
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}

	if interval := config.GetDuration("backups.interval"); interval > 0 {
		manager := backup.NewManager(config.GetString("backups.path"), config.GetInt("backups.keep"))
		scheduler := backup.NewScheduler(manager, db.GetDB(), interval, log)
		g.Go(func() error {
			return scheduler.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		api.Hub().Close()

		timeout := config.GetDuration("server.shutdown_timeout")
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		var errs []error
		for _, srv := range servers {
			errs = append(errs, srv.Shutdown(shutdownCtx))
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

// serve runs srv until Shutdown; TLS is used when srv has a TLS config
func serve(srv *http.Server, log *logger.Logger) error {
	var err error
	if srv.TLSConfig != nil {
		log.With("addr", srv.Addr).Info("starting HTTPS server")
		err = srv.ListenAndServeTLS("", "")
	} else {
		log.With("addr", srv.Addr).Info("starting HTTP server")
		err = srv.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server on %s failed: %w", srv.Addr, err)
	}
	return nil
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}

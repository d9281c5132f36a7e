// Package app wires configuration, logging, clients, and modules into a
// runnable HTTP gateway.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/logger"

	"github.com/omnidash/omnidash/internal/config"
	"github.com/omnidash/omnidash/internal/fetch"
	"github.com/omnidash/omnidash/internal/middleware"
	"github.com/omnidash/omnidash/internal/module/characters"
	"github.com/omnidash/omnidash/internal/module/countries"
	"github.com/omnidash/omnidash/internal/module/crypto"
	"github.com/omnidash/omnidash/internal/module/dashboard"
	"github.com/omnidash/omnidash/internal/module/exchange"
	"github.com/omnidash/omnidash/internal/module/movies"
	"github.com/omnidash/omnidash/internal/module/news"
	"github.com/omnidash/omnidash/internal/module/pokemon"
	"github.com/omnidash/omnidash/internal/module/weather"
)

const defaultRequestTimeout = 10 * time.Second

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine *gin.Engine
	logger *logger.Logger
	cfg    *config.Config
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

var newHTTPServer = func(addr string, handler http.Handler) httpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

var notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

// New creates and wires a fully configured App from the given Config.
//
// It sets up logging, the shared outbound HTTP client, all domain clients,
// middleware, and routes.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	success := false

	// 1. Setup logger.
	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	if cfg.Providers.NewsAPIKey == "" {
		log.Warn("NEWS_API_KEY not set, /api/news relay routes will answer 400")
	}
	if cfg.Providers.TMDBAPIKey == "" {
		log.Warn("TMDB_API_KEY not set, /api/movies relay routes will answer 400")
	}

	// 2. Shared outbound client; one timeout covers every provider call.
	fetcher := fetch.New(
		fetch.WithTimeout(cfg.RequestTimeout(defaultRequestTimeout)),
		fetch.WithUserAgent("omnidash/1.0"),
	)

	// 3. Manual dependency injection: client → handler → module.
	weatherClient := weather.NewClient(fetcher, cfg.Upstreams.Weather, cfg.Upstreams.Geocoding)
	charactersClient := characters.NewClient(fetcher, cfg.Upstreams.Characters)
	countriesClient := countries.NewClient(fetcher, cfg.Upstreams.Countries)
	cryptoClient := crypto.NewClient(fetcher, cfg.Upstreams.Crypto)
	pokemonClient := pokemon.NewClient(fetcher, cfg.Upstreams.Pokemon)
	exchangeClient := exchange.NewClient(fetcher, cfg.Upstreams.Exchange)
	newsClient := news.NewClient(fetcher, cfg.Upstreams.Proxy, log.Logger)
	moviesClient := movies.NewClient(fetcher, cfg.Upstreams.Proxy, log.Logger)

	snapshotService := dashboard.NewService(dashboard.Clients{
		Weather:    weatherClient,
		Characters: charactersClient,
		Countries:  countriesClient,
		Crypto:     cryptoClient,
		Pokemon:    pokemonClient,
		Exchange:   exchangeClient,
		News:       newsClient,
		Movies:     moviesClient,
	}, log.Logger)

	modules := []Module{
		dashboard.NewModule(dashboard.NewHandler(snapshotService)),
		weather.NewModule(weather.NewHandler(weatherClient)),
		characters.NewModule(characters.NewHandler(charactersClient)),
		countries.NewModule(countries.NewHandler(countriesClient)),
		crypto.NewModule(crypto.NewHandler(cryptoClient)),
		pokemon.NewModule(pokemon.NewHandler(pokemonClient)),
		exchange.NewModule(exchange.NewHandler(exchangeClient)),
		news.NewModule(
			news.NewHandler(newsClient),
			news.NewProxy(fetcher, cfg.Upstreams.News, cfg.Providers.NewsAPIKey, log.Logger),
		),
		movies.NewModule(
			movies.NewHandler(moviesClient),
			movies.NewProxy(fetcher, cfg.Upstreams.Movies, cfg.Providers.TMDBAPIKey, log.Logger),
		),
	}

	// 4. Create Gin engine with custom middleware (not gin.Default()).
	if err := validateGinMode(cfg.Server.Mode); err != nil {
		return nil, err
	}
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.Server.CORS.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Server.CORS.AllowOrigins
	}

	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestID(),
		middleware.Logger(log.Logger),
		middleware.CORSWithConfig(corsConfig),
	)

	// 5. Register all routes.
	if err := RegisterRoutes(engine, &RouteDeps{
		Modules:           modules,
		NewsKeyConfigured: cfg.Providers.NewsAPIKey != "",
		TMDBKeyConfigured: cfg.Providers.TMDBAPIKey != "",
	}); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	success = true
	return &App{
		engine: engine,
		logger: log,
		cfg:    cfg,
	}, nil
}

func validateGinMode(mode string) error {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
}

// Run starts the HTTP server and blocks until a shutdown signal is received.
// It performs graceful shutdown with a 5-second timeout.
func (a *App) Run() error {
	if a == nil {
		return errors.New("app is nil")
	}
	if a.cfg == nil {
		return errors.New("app config is nil")
	}
	if a.engine == nil {
		return errors.New("app engine is nil")
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := newHTTPServer(addr, a.engine)

	// Listen for SIGINT / SIGTERM.
	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log().Info("server started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.log().Info("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.log().Error("server shutdown error", slog.Any("error", err))
		}
	}

	a.log().Info("server stopped")
	if a.logger != nil {
		if err := a.logger.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}

	return runErr
}

func (a *App) log() *slog.Logger {
	if a.logger != nil {
		return a.logger.Logger
	}
	return slog.Default()
}

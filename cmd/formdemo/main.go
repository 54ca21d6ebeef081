package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/locations"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/nameindex"
	"github.com/dmitrymomot/formkit/widget"
)

type appConfig struct {
	Environment   string        `env:"APP_ENV" envDefault:"development"`  // Environment selects logging defaults: "development" or "production".
	UseRedis      bool          `env:"USE_REDIS" envDefault:"false"`      // UseRedis switches the name index to the Redis backend.
	LocationsFile string        `env:"LOCATIONS_FILE"`                    // LocationsFile optionally points to a YAML file with dropdown options.
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"30m"`      // SessionTTL is how long an idle widget session survives.
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	logOpts := []logger.Option{logger.WithService("formdemo")}
	if cfg.Environment != "production" {
		logOpts = append(logOpts, logger.WithDevelopment())
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	ctx := context.Background()

	index, cleanup, err := newIndex(ctx, cfg)
	if err != nil {
		log.Error("failed to set up name index", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	options, err := newLocations(ctx, cfg)
	if err != nil {
		log.Error("failed to load locations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	manager := widget.NewManager(func() *widget.Form {
		return widget.NewForm(index, options, widget.WithLogger(log))
	}, widget.WithSessionTTL(cfg.SessionTTL))
	defer manager.Close()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Mount("/", widget.Router(manager, log))

	var httpCfg httpserver.Config
	config.MustLoad(&httpCfg)

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newIndex(ctx context.Context, cfg appConfig) (nameindex.Index, func(), error) {
	if !cfg.UseRedis {
		return nameindex.NewMemory(), func() {}, nil
	}

	var redisCfg nameindex.RedisConfig
	config.MustLoad(&redisCfg)

	idx, err := nameindex.Connect(ctx, redisCfg)
	if err != nil {
		return nil, nil, err
	}
	return idx, func() { _ = idx.Close() }, nil
}

func newLocations(ctx context.Context, cfg appConfig) ([]locations.Location, error) {
	var source locations.Source
	if cfg.LocationsFile != "" {
		source = locations.NewYAMLFile(cfg.LocationsFile, language.English)
	} else {
		source = locations.NewStatic(language.English,
			locations.Location{Code: "at", Name: "Austria"},
			locations.Location{Code: "de", Name: "Germany"},
			locations.Location{Code: "ch", Name: "Switzerland"},
			locations.Location{Code: "nl", Name: "Netherlands"},
			locations.Location{Code: "pl", Name: "Poland"},
		)
	}
	return source.List(ctx)
}

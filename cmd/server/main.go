package main

import (
	"context"
	"os"
	"time"

	"github.com/webglot/webglot/pkg/analytics"
	"github.com/webglot/webglot/pkg/config"
	"github.com/webglot/webglot/pkg/httpserver"
	"github.com/webglot/webglot/pkg/i18n"
	"github.com/webglot/webglot/pkg/logger"
)

type appConfig struct {
	Addr        string   `env:"SERVER_ADDR" envDefault:":8080"`
	SiteDir     string   `env:"SITE_DIR" envDefault:"./site"`
	LangDir     string   `env:"LANG_DIR" envDefault:"./site/lang"`
	Languages   []string `env:"LANGUAGES" envDefault:"ru,en"`
	DefaultLang string   `env:"DEFAULT_LANG" envDefault:"en"`
	Environment string   `env:"APP_ENV" envDefault:"development"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(logger.WithEnvironment(cfg.Environment, "webglot"))
	logger.SetAsDefault(log)

	s := &site{
		siteFS:      os.DirFS(cfg.SiteDir),
		fetcher:     i18n.NewFSFetcher(os.DirFS(cfg.LangDir), "."),
		tracker:     analytics.NewLogTracker(log),
		logger:      log,
		languages:   cfg.Languages,
		defaultLang: cfg.DefaultLang,
		cookieName:  "lang",
	}

	srv := httpserver.New(
		httpserver.WithAddr(cfg.Addr),
		httpserver.WithLogger(log),
		httpserver.WithReadTimeout(10*time.Second),
		httpserver.WithWriteTimeout(15*time.Second),
		httpserver.WithIdleTimeout(60*time.Second),
	)
	if err := srv.Run(context.Background(), s.routes(context.Background())); err != nil {
		log.Error("server terminated", logger.Error(err))
		os.Exit(1)
	}
}

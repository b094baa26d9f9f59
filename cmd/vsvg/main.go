package main

import (
	"flag"
	"log"

	"github.com/reidab/vsvg/internal/config"
	"github.com/reidab/vsvg/viewer"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	tolerance := flag.Float64("tolerance", 0.1, "curve flattening tolerance, in document units")
	page := flag.String("page", "a4", `page size: a named size ("a4"), "WxH" in document units, or "none"`)
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	var err error
	var l *zap.Logger
	if *verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	zap.ReplaceGlobals(l)
	defer l.Sync() //nolint:errcheck

	cfg := config.DefaultConfig()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			l.Fatal("load config", zap.String("path", *configPath), zap.Error(err))
		}
		l.Info("loaded config", zap.String("path", *configPath))
	}

	// Flags set on the command line override file values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tolerance":
			cfg.Document.Tolerance = *tolerance
		case "page":
			cfg.Document.Page = *page
		}
	})

	src, err := newDemoSource(cfg.Document.Page)
	if err != nil {
		l.Fatal("resolve page size", zap.String("page", cfg.Document.Page), zap.Error(err))
	}

	err = viewer.Show(src, cfg.Document.Tolerance,
		viewer.WithTitle(cfg.Window.Title),
		viewer.WithWindowSize(cfg.Window.Width, cfg.Window.Height),
		viewer.WithStyle(cfg.Style()),
		viewer.WithLogger(l),
	)
	if err != nil {
		l.Fatal("show document", zap.Error(err))
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"driving-theory-web/internal/cache"
	"driving-theory-web/internal/config"
	"driving-theory-web/internal/data"
	"driving-theory-web/internal/logger"
	"driving-theory-web/internal/refs"
	"driving-theory-web/internal/service"
	"driving-theory-web/internal/site"
	"driving-theory-web/internal/view"
	"driving-theory-web/web"
)

func main() {
	// --- Configuration Loading ---
	cfg, err := config.LoadConfig()
	if err != nil {
		// Use fmt.Printf here because the logger is not yet initialized.
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Initialization ---
	log := logger.New(cfg.Log, nil)

	// --- Store Initialization ---
	log.Info("Opening per-locale question stores...")
	store := data.NewStore(cfg.DB.Dir)
	defer store.Close()
	content := service.NewContentService(store)

	// --- View Template Initialization ---
	viewService, err := view.New(web.TemplateFS)
	if err != nil {
		log.Fatal(err, "Failed to initialize view templates")
	}

	// --- Build Cache Initialization ---
	var buildCache *cache.Cache
	if cfg.Cache.Path != "" {
		buildCache, err = cache.New(cfg.Cache.Path)
		if err != nil {
			log.Fatal(err, "Failed to initialize build cache")
		}
		defer buildCache.Close()
	}

	refsLoader := refs.NewLoader(cfg.Refs.Dir, buildCache)

	// --- Build ---
	builder := site.NewBuilder(cfg, log, content, viewService, refsLoader)

	start := time.Now()
	if err := builder.Build(context.Background()); err != nil {
		log.Fatal(err, "Build failed")
	}
	log.Info(fmt.Sprintf("Build finished in %s", time.Since(start).Round(time.Millisecond)))
}

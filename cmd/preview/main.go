package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"driving-theory-web/internal/config"
	"driving-theory-web/internal/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// preview serves an already generated output directory locally. Production
// serving is plain static hosting; this exists so the generated tree,
// including the 404 page, can be checked before deployment.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log, nil)

	if _, err := os.Stat(cfg.Site.OutDir); err != nil {
		log.Fatal(err, "Output directory not found; run the generator first")
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	outDir := cfg.Site.OutDir
	fileServer := http.FileServer(http.Dir(outDir))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		serveNotFound(w, outDir)
	})
	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		path := filepath.Join(outDir, filepath.FromSlash(req.URL.Path))
		info, err := os.Stat(path)
		if err != nil || (info.IsDir() && !dirHasIndex(path)) {
			serveNotFound(w, outDir)
			return
		}
		fileServer.ServeHTTP(w, req)
	})

	addr := ":" + cfg.Preview.Port
	log.Info(fmt.Sprintf("Serving %s on %s", outDir, addr))
	if err := http.ListenAndServe(addr, r); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err, "Preview server failed")
	}
}

func serveNotFound(w http.ResponseWriter, outDir string) {
	body, err := os.ReadFile(filepath.Join(outDir, "404.html"))
	if err != nil {
		http.Error(w, "404 page not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write(body)
}

func dirHasIndex(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "index.html"))
	return err == nil
}

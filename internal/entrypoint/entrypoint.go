package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Tofeeq09/m54-Week-8---SQL/internal/config"
	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database"
	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database/authors"
	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database/books"
	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database/genres"
	http_controllers "github.com/Tofeeq09/m54-Week-8---SQL/internal/http"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for SIGINT/SIGTERM, then drain connections within the timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Library API v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	routerCfg := http_controllers.RouterConfig{
		Database:    db,
		AuthorStore: authors.NewRepository(db.DB),
		GenreStore:  genres.NewRepository(db.DB),
		BookStore:   books.NewRepository(db.DB),
		Version:     version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg, nil)
}

package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"probuilder/internal/adapter/http/handlers"
	"probuilder/internal/adapter/http/middleware"
	"probuilder/internal/adapter/http/views"
	"probuilder/internal/infrastructure/config"
	"probuilder/internal/infrastructure/logging"
	"probuilder/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies is what the router needs to serve the site.
type Dependencies struct {
	QuoteRequests usecase.IQuoteRequestUseCase
	AdminAuth     usecase.IAdminAuthUseCase
	Cookies       middleware.CookieOptions
	MaxImageBytes int64
	StaticDir     string
}

// Run will start the server
func Run() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logging.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := buildDependencies(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to build dependencies: %v", err)
	}
	defer cleanup()

	router, err := NewRouter(deps)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	if err := serve(ctx, cfg, router); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

// NewRouter wires middlewares, templates and every route of the site.
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	router := gin.New()
	setMiddlewares(router)
	router.SetHTMLTemplate(tmpl)
	if deps.StaticDir != "" {
		router.Static("/static", deps.StaticDir)
	}

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	addPingRoutes(router)

	router.Use(middleware.AdminSession(deps.AdminAuth))

	quoteRequestHandler := handlers.NewQuoteRequestHandler(deps.QuoteRequests, deps.MaxImageBytes)
	adminHandler := handlers.NewAdminHandler(deps.QuoteRequests, deps.AdminAuth, deps.Cookies)

	addSiteRoutes(router, quoteRequestHandler)
	addAdminRoutes(router, adminHandler)
	return router, nil
}

func serve(ctx context.Context, cfg *config.Config, router *gin.Engine) error {
	srv := &http.Server{
		Addr:    cfg.ServerAddress(),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("Server stopped")
	return nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(logging.GinLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

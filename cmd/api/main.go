// @title        Blog CMS API
// @version      1.0
// @description  게시글 작성/수정/삭제 페이지와 JSON 조회 API
// @BasePath     /
package main

import (
	_ "BlogCMS_Server/docs"
	"BlogCMS_Server/internal/config"
	"BlogCMS_Server/internal/events"
	"BlogCMS_Server/internal/handler"
	"BlogCMS_Server/internal/middleware"
	"BlogCMS_Server/internal/posts"
	"BlogCMS_Server/internal/storage"
	"BlogCMS_Server/internal/views"
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open record store: %v", err)
	}
	defer closeStore()

	images, err := storage.NewImageStore(cfg.PublicDir)
	if err != nil {
		log.Fatalf("Failed to prepare image store: %v", err)
	}

	hub := events.NewHub(16)
	svc, err := posts.NewService(context.Background(), store, images, hub)
	if err != nil {
		log.Fatalf("Failed to load posts: %v", err)
	}

	router, err := setupRouter(cfg, handler.New(svc, hub, cfg.MaxUploadBytes()))
	if err != nil {
		log.Fatalf("Failed to set up router: %v", err)
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: middleware.MethodOverride(router),
	}

	go func() {
		log.Printf("Server running on port %d.", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	s := <-quit
	log.Printf("Shutting down due to signal %s", s)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown(): %v", err)
	}
}

func openStore(cfg *config.Config) (storage.RecordStore, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		db, err := storage.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { db.Close() }, nil
	default:
		log.Printf("openStore(): using JSON data file %s", cfg.DataFile)
		return storage.NewJSONStore(cfg.DataFile), func() {}, nil
	}
}

func setupRouter(cfg *config.Config, h *handler.Handler) (*gin.Engine, error) {
	tmpl, err := views.Load()
	if err != nil {
		return nil, err
	}

	router := gin.Default()
	router.SetHTMLTemplate(tmpl)
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, middleware.RequestIDHeader, middleware.MethodOverrideHeader)
	corsConfig.ExposeHeaders = append(corsConfig.ExposeHeaders, middleware.RequestIDHeader)
	router.Use(cors.New(corsConfig))
	router.Use(middleware.RequestID())

	router.Static("/images", filepath.Join(cfg.PublicDir, "images"))
	router.Static("/static", filepath.Join(cfg.PublicDir, "static"))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h.Register(router, middleware.UploadRateLimit(cfg.UploadRatePerMinute, cfg.UploadRateBurst))
	return router, nil
}

package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/facuparedes/streaming-catalogs-addon/internal/middleware"
	"github.com/facuparedes/streaming-catalogs-addon/pkg/logger"
)

func main() {
	initializeLogger()
	initializeConfig()

	if appConfig.LogLevel != "" {
		appLogger = logger.NewWithLevel(logger.ParseLevel(appConfig.LogLevel))
	}

	initializeStore()
	defer store.Close()

	initializeServices()

	// Warm the provider catalogs before serving, then keep them fresh
	// in the background.
	serviceContainer.Catalog.RefreshProviderCatalogs(appConfig.ForceRefresh)
	serviceContainer.Catalog.StartRefreshLoop(appConfig.RefreshInterval)

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			serviceContainer.Cache.CleanExpired()
		}
	}()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Gzip())
	r.Use(middleware.CORS())

	handler.RegisterRoutes(r)

	appLogger.Infof("[App] starting HTTP server on port %s", appConfig.Port)
	log.Fatal(http.ListenAndServe(":"+appConfig.Port, r))
}

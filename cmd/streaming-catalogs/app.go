package main

import (
	"github.com/facuparedes/streaming-catalogs-addon/internal/config"
	"github.com/facuparedes/streaming-catalogs-addon/internal/database"
	"github.com/facuparedes/streaming-catalogs-addon/internal/handlers"
	"github.com/facuparedes/streaming-catalogs-addon/internal/services"
	"github.com/facuparedes/streaming-catalogs-addon/pkg/logger"
)

var (
	appLogger        logger.Logger
	appConfig        *config.Config
	store            *database.BoltStore
	serviceContainer *services.Container
	handler          *handlers.Handler
)

func initializeConfig() {
	var err error
	appConfig, err = config.Load()
	if err != nil {
		appLogger.Fatalf("[App] failed to load configuration: %v", err)
	}
}

func initializeLogger() {
	appLogger = logger.New()
}

func initializeStore() {
	var err error
	store, err = database.NewBolt(appConfig.DatabasePath)
	if err != nil {
		appLogger.Fatalf("[App] failed to open cache store: %v", err)
	}
	appLogger.Infof("[App] cache store opened at %s", appConfig.DatabasePath)
}

func initializeServices() {
	verifier := services.NewIMDBVerifier(appLogger)
	cinemeta := services.NewCinemeta(appLogger)
	justwatch := services.NewJustWatch(verifier, cinemeta, appLogger)
	resolver := services.NewResolver(store, justwatch, appLogger)
	top10 := services.NewNetflixTop10(appLogger)
	catalog := services.NewCatalogService(
		store, justwatch, resolver, top10, cinemeta,
		appConfig.Top10ProxyCountry, appConfig.UseCache, appLogger,
	)

	serviceContainer = &services.Container{
		JustWatch: justwatch,
		Resolver:  resolver,
		Top10:     top10,
		Cinemeta:  cinemeta,
		Catalog:   catalog,
		Store:     store,
		Cache:     catalog.LocalizedCache(),
		Logger:    appLogger,
	}

	handler = handlers.New(serviceContainer)

	appLogger.Infof("[App] services initialized, global top10 proxy country: %s", appConfig.Top10ProxyCountry)
}

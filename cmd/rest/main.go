package main

import (
	"context"
	"log"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/bootstrap"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/config"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/server"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/tracer"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	// Background worker turning bus events into pushed notifications
	if err := container.NotificationService.Start(context.Background()); err != nil {
		log.Printf("Background notification worker error: %v", err)
	}

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}

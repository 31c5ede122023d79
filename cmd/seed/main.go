package main

import (
	"context"
	"flag"

	"github.com/BruksfildServices01/table-reservation/internal/config"
	dbpkg "github.com/BruksfildServices01/table-reservation/internal/db"
	"github.com/BruksfildServices01/table-reservation/internal/logger"
	"github.com/BruksfildServices01/table-reservation/internal/seed"
)

func main() {
	skipTables := flag.Bool("skip-tables", false, "do not create the default floor plan")
	skipAdmin := flag.Bool("skip-admin", false, "do not create or update the admin account")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	db := dbpkg.NewDB(cfg)
	ctx := context.Background()

	if !*skipTables {
		if _, err := seed.Tables(ctx, db, seed.DefaultFloor); err != nil {
			logger.Log.Fatalf("seed tables: %v", err)
		}
	}

	if !*skipAdmin {
		if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
			logger.Log.Info("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin")
			return
		}
		if _, err := seed.Admin(ctx, db, seed.AdminAccount{
			Name:     cfg.AdminName,
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
		}); err != nil {
			logger.Log.Fatalf("seed admin: %v", err)
		}
	}
}

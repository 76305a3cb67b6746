// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

// Command seed-admin creates the initial administrator account.
//
// It is idempotent: when the username already exists the command logs and
// exits cleanly without touching the stored identity. The administrator is
// granted every action on every module.
//
// Usage:
//
//	seed-admin -username admin -password <secret> [-name "Administrator"]
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/freightdeskhq/freightdesk/internal/identity"
	"github.com/freightdeskhq/freightdesk/internal/platform/apperr"
	"github.com/freightdeskhq/freightdesk/internal/platform/config"
	"github.com/freightdeskhq/freightdesk/internal/platform/constants"
	pgstore "github.com/freightdeskhq/freightdesk/internal/platform/postgres"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", constants.AppName))

	username := flag.String("username", "admin", "administrator username")
	password := flag.String("password", "", "administrator password (required)")
	name := flag.String("name", "Administrator", "administrator display name")
	flag.Parse()

	if *password == "" {
		log.Error("missing required flag", slog.String("flag", "password"))
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	must(log, err, "load configuration")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	store := identity.NewPostgresStore(pool)

	// Seeding never overwrites: an existing account keeps its credentials.
	if _, err := store.FindByUsername(ctx, *username); err == nil {
		log.Info("administrator already exists", slog.String("username", *username))
		return
	} else if appError := apperr.As(err); appError == nil || appError.Code != "NOT_FOUND" {
		must(log, err, "look up administrator")
	}

	grants := make([]identity.Grant, 0, len(constants.AllModules))
	for _, module := range constants.AllModules {
		grants = append(grants, identity.Grant{
			Module:  module,
			Actions: append([]string(nil), constants.AllActions...),
		})
	}

	service := identity.NewService(store, nil)
	user, err := service.CreateUser(ctx, identity.CreateInput{
		Username:    *username,
		Name:        *name,
		Password:    *password,
		Role:        identity.RoleAdmin,
		Permissions: grants,
	})
	must(log, err, "create administrator")

	log.Info("administrator created",
		slog.String("id", user.ID),
		slog.String("username", user.Username),
	)
}

// must logs a structured fatal error and terminates the process if err is non-nil.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

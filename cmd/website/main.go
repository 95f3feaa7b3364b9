// Package main provides the entry point for the 4Data website
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/DevPedroAugusto-BR/data-beacon-launch/domain/contact"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/domain/health"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/domain/pages"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/domain/tracing"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/config"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/content"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/server"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/pkg/logger"
)

func main() {
	// .env.local overrides .env; Load() won't overwrite existing vars, Overload() will
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		server.Module,
		content.Module,
		tracing.Module,

		// Domain modules
		health.Module,
		contact.Module,
		pages.Module,
	).Run()
}

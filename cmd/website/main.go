// Package main runs the ADmyBrand landing site.
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/AadarshMishraa/ADmyBrand/internal/assist"
	"github.com/AadarshMishraa/ADmyBrand/internal/config"
	"github.com/AadarshMishraa/ADmyBrand/internal/contact"
	"github.com/AadarshMishraa/ADmyBrand/internal/content"
	"github.com/AadarshMishraa/ADmyBrand/internal/handlers"
	"github.com/AadarshMishraa/ADmyBrand/internal/logger"
	"github.com/AadarshMishraa/ADmyBrand/internal/server"
	"github.com/AadarshMishraa/ADmyBrand/internal/theme"
	"github.com/AadarshMishraa/ADmyBrand/internal/tracing"
)

func main() {
	// .env.local is loaded first so it wins over .env; neither overrides
	// variables already set in the environment
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure
		logger.Module,
		config.Module,
		tracing.Module,
		theme.Module,
		server.Module,

		// Site
		content.Module,
		assist.Module,
		contact.Module,
		handlers.Module,
	).Run()
}

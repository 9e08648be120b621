package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"terrain_alert/internal/predict"
	"terrain_alert/internal/widget"
	"terrain_alert/internal/widget/terminal"
	"terrain_alert/platform/config"
	"terrain_alert/platform/logger"
	"terrain_alert/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// stdout is the display
	log := logger.NewWithWriter(cfg.Env, os.Stderr)
	log.Info("starting terminal widget", "env", cfg.Env, "endpoint", cfg.GetPredictBaseURL())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	val := validator.New()
	predictModule := predict.NewModule(cfg, val, log)

	screen := terminal.NewScreen(os.Stdout)
	w := widget.New(
		predictModule.Predictor(),
		screen.Elements(),
		log,
		widget.WithDropStale(cfg.GetDropStaleResponses()),
		widget.WithValidator(val),
	)

	if err := terminal.Run(ctx, os.Stdin, w); err != nil && ctx.Err() == nil {
		log.Error("terminal loop failed", "error", err)
		os.Exit(1)
	}
}

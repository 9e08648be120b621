// Package webui serves the location query widget as a server-rendered page.
package webui

import (
	"time"

	apphttp "terrain_alert/internal/http"
	"terrain_alert/internal/predict"
	"terrain_alert/platform/config"
	"terrain_alert/platform/logger"
	"terrain_alert/platform/validator"
)

// Module wires the widget page and the JSON prediction proxy.
type Module struct {
	handler *Handler
}

func NewModule(predictor predict.Predictor, cfg config.WidgetConfig, val *validator.Validator, log *logger.Logger) *Module {
	h := NewHandler(predictor, cfg, val, log, time.Now)
	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "webui"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Engine.GET("/", m.handler.Index)
	ctx.Engine.POST("/close", m.handler.Close)

	search := ctx.Engine.Group("")
	api := ctx.V1.Group("")
	if ctx.RateLimiter != nil {
		search.Use(ctx.RateLimiter.RateLimit())
		api.Use(ctx.RateLimiter.RateLimit())
	}
	search.POST("/search", m.handler.Search)
	api.POST("/predict", m.handler.Predict)
}

var _ apphttp.Module = (*Module)(nil)

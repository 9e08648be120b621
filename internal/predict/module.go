package predict

import (
	"terrain_alert/internal/predict/client"
	"terrain_alert/platform/config"
	"terrain_alert/platform/logger"
	"terrain_alert/platform/validator"
)

// Module is the prediction bounded context module.
type Module struct {
	client *client.Client
}

// NewModule creates the prediction client from configuration.
func NewModule(cfg config.PredictConfig, val *validator.Validator, log *logger.Logger) *Module {
	log.Info("predict module initialized",
		"endpoint", cfg.GetPredictBaseURL()+client.PredictPath,
		"timeout", cfg.GetPredictTimeout().String(),
	)
	return &Module{client: client.New(cfg, val, log)}
}

// Predictor returns the prediction client for injection into the widget.
func (m *Module) Predictor() Predictor {
	return m.client
}

var _ Predictor = (*client.Client)(nil)

// Package predict provides the risk prediction bounded context.
// This file defines the public interface exposed to the widget and hosts.
package predict

import (
	"context"

	"terrain_alert/internal/predict/transport"
)

// Predictor submits a place to the prediction endpoint.
// Hosts and the widget depend on this interface, not on the HTTP client.
type Predictor interface {
	// Predict sends one request for place. Errors are tagged *apperr.Error values.
	Predict(ctx context.Context, place string) (*transport.PredictionResponse, error)
}

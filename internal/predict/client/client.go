// Package client provides the HTTP client for the risk prediction endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"terrain_alert/internal/predict/transport"
	"terrain_alert/platform/apperr"
	"terrain_alert/platform/config"
	"terrain_alert/platform/logger"
	"terrain_alert/platform/validator"
)

const (
	// PredictPath is the fixed path of the prediction endpoint.
	PredictPath = "/predict"
	// FallbackMessage is shown when a failure response has no error field.
	FallbackMessage = "Prediction failed."

	op = "predict"
)

var errNullBody = errors.New("response body is null")

// Client is the HTTP client for POST /predict.
type Client struct {
	httpClient *http.Client
	baseURL    string
	val        *validator.Validator
	log        *logger.Logger
}

// New creates a prediction client. A zero timeout leaves requests bounded
// only by the caller's context and the transport defaults.
func New(cfg config.PredictConfig, val *validator.Validator, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.GetPredictTimeout()},
		baseURL:    cfg.GetPredictBaseURL(),
		val:        val,
		log:        log,
	}
}

// Predict sends exactly one request for place and returns the decoded body.
//
// Errors are *apperr.Error values:
//   - KindValidation when place is blank (no request is sent);
//   - KindApplication when the server answers non-2xx with a JSON body;
//   - KindTransport for any other failure of the request/response cycle.
func (c *Client) Predict(ctx context.Context, place string) (*transport.PredictionResponse, error) {
	body := transport.PredictRequest{Place: place}
	if err := c.val.Struct(body); err != nil {
		return nil, apperr.Validation("place is required").WithOp(op)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, apperr.Internal("encode request: " + err.Error()).WithOp(op)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+PredictPath, bytes.NewReader(payload))
	if err != nil {
		return nil, apperr.Transport("create request", err).WithOp(op)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Transport("execute request", err).WithOp(op)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.log.WithContext(ctx).PredictionRequest(place, resp.StatusCode, float64(time.Since(start).Milliseconds()))

	// The body is decoded before the status is looked at: a failure response
	// that is not JSON is a transport problem, not an application one.
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Transport(fmt.Sprintf("read response (HTTP %d)", resp.StatusCode), err).WithOp(op)
	}
	result, err := decodeResponse(raw)
	if err != nil {
		return nil, apperr.Transport(fmt.Sprintf("decode response (HTTP %d)", resp.StatusCode), err).WithOp(op)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := result.Error
		if message == "" {
			message = FallbackMessage
		}
		return nil, apperr.Application(message, resp.StatusCode).WithOp(op)
	}

	return result, nil
}

// decodeResponse accepts exactly one JSON object. Trailing data and a
// top-level null are rejected.
func decodeResponse(raw []byte) (*transport.PredictionResponse, error) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, errNullBody
	}
	var result transport.PredictionResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

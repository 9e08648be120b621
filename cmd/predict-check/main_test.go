package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"terrain_alert/internal/predict/transport"
	"terrain_alert/platform/apperr"
)

type stubPredictor struct {
	resp *transport.PredictionResponse
	err  error
}

func (s stubPredictor) Predict(context.Context, string) (*transport.PredictionResponse, error) {
	return s.resp, s.err
}

func ptr(v float64) *float64 { return &v }

func TestRun_PrintsResultAndCoordinates(t *testing.T) {
	var out bytes.Buffer
	p := stubPredictor{resp: &transport.PredictionResponse{
		Place:     "Idukki",
		Latitude:  ptr(9.85),
		Longitude: ptr(76.97),
		Weather:   &transport.Weather{RainfallMM: ptr(12.4)},
		Risk:      "HIGH RISK",
	}}

	if err := run(context.Background(), &out, p, "Idukki"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Idukki", "12.4 mm", "HIGH RISK", "Coordinates: 9.85, 76.97"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestErrorLine(t *testing.T) {
	if got := errorLine(apperr.Application("Location not found", 404)); got != "Error 404: Location not found" {
		t.Fatalf("expected status line, got %q", got)
	}
	got := errorLine(apperr.Transport("request failed", errors.New("connection refused")))
	if !strings.HasPrefix(got, "Error: ") || !strings.Contains(got, "connection refused") {
		t.Fatalf("unexpected transport line %q", got)
	}
}

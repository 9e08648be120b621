// Command predict-check posts one place to the prediction endpoint and prints
// the result. It exits 1 when the request fails.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"terrain_alert/internal/predict"
	"terrain_alert/internal/predict/transport"
	"terrain_alert/internal/widget/view"
	"terrain_alert/platform/apperr"
	"terrain_alert/platform/config"
	"terrain_alert/platform/logger"
	"terrain_alert/platform/validator"
)

func main() {
	place := flag.String("place", "Idukki", "place to query")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}
	log := logger.NewWithWriter(cfg.Env, os.Stderr)

	p := predict.NewModule(cfg, validator.New(), log).Predictor()
	if err := run(context.Background(), os.Stdout, p, *place); err != nil {
		fmt.Fprintln(os.Stderr, errorLine(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, p predict.Predictor, place string) error {
	resp, err := p.Predict(ctx, place)
	if err != nil {
		return err
	}
	if err := view.WriteText(out, view.Render(resp, time.Now())); err != nil {
		return err
	}
	if coords := coordinates(resp); coords != "" {
		fmt.Fprintln(out, "Coordinates:", coords)
	}
	return nil
}

func coordinates(resp *transport.PredictionResponse) string {
	if resp.Latitude == nil || resp.Longitude == nil {
		return ""
	}
	return strconv.FormatFloat(*resp.Latitude, 'f', -1, 64) + ", " + strconv.FormatFloat(*resp.Longitude, 'f', -1, 64)
}

// errorLine formats err as "Error <status>: <message>" for server answers and
// "Error: <message>" otherwise.
func errorLine(err error) string {
	var e *apperr.Error
	if errors.As(err, &e) && e.Kind == apperr.KindApplication {
		if status, ok := e.Details.(int); ok {
			return fmt.Sprintf("Error %d: %s", status, e.Message)
		}
	}
	return "Error: " + err.Error()
}

// Package view turns a prediction response into the modal's view-model and
// writes that model to HTML or to a terminal. Render is pure; writing the
// result to a display surface is the caller's job.
package view

import (
	"strconv"
	"time"

	"terrain_alert/internal/predict/transport"
)

// TimestampLayout matches the en-US locale string of a browser clock.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// Metric is one line of the weather list.
type Metric struct {
	Label string
	Value string // empty when the server sent no value
	Unit  string
}

// Display returns the value with its unit, or "" when the value is absent.
func (m Metric) Display() string {
	if m.Value == "" {
		return ""
	}
	return m.Value + m.Unit
}

// Modal is the content of the result modal: weather on the left, risk on
// the right.
type Modal struct {
	Location  string
	Timestamp string
	Metrics   []Metric
	Risk      string
	Note      string
}

// HasNote reports whether the italic note line is rendered.
func (m Modal) HasNote() bool {
	return m.Note != ""
}

// Render maps a successful response to the modal view-model. now is the
// client-side clock; the server sends no timestamp. The three metrics are
// always present, in temperature, rainfall, humidity order.
func Render(resp *transport.PredictionResponse, now time.Time) Modal {
	var weather transport.Weather
	if resp.Weather != nil {
		weather = *resp.Weather
	}

	return Modal{
		Location:  resp.Place,
		Timestamp: FormatTimestamp(now),
		Metrics: []Metric{
			{Label: "Temperature", Value: formatValue(weather.TemperatureC), Unit: "°C"},
			{Label: "Rainfall", Value: formatValue(weather.RainfallMM), Unit: " mm"},
			{Label: "Humidity", Value: formatValue(weather.HumidityPercent), Unit: "%"},
		},
		Risk: resp.Risk,
		Note: resp.Note,
	}
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

func formatValue(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

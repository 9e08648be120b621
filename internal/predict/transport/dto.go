// Package transport provides DTOs for the prediction endpoint.
package transport

// PredictRequest is the body of POST /predict.
type PredictRequest struct {
	Place string `json:"place" validate:"required,notblank"`
}

// Weather holds the current conditions returned with a prediction.
// Every metric may be absent or null.
type Weather struct {
	TemperatureC    *float64 `json:"Temperature_C"`
	RainfallMM      *float64 `json:"Rainfall_mm"`
	HumidityPercent *float64 `json:"Humidity_percent"`
}

// PredictionResponse is the body of a /predict response. Success bodies fill
// Place, Weather, Risk and optionally Note; failure bodies only carry Error.
type PredictionResponse struct {
	Place     string   `json:"place"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Weather   *Weather `json:"weather,omitempty"`
	Risk      string   `json:"risk"`
	Note      string   `json:"note,omitempty"`
	Error     string   `json:"error,omitempty"`
}

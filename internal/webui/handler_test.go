package webui

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	apphttp "terrain_alert/internal/http"
	"terrain_alert/internal/http/router"
	"terrain_alert/internal/predict/transport"
	"terrain_alert/internal/widget"
	"terrain_alert/platform/apperr"
	"terrain_alert/platform/logger"
	"terrain_alert/platform/validator"

	"github.com/gin-gonic/gin"
)

type testConfig struct {
	dropStale bool
	rps       float64
	burst     int
}

func (c testConfig) GetDropStaleResponses() bool { return c.dropStale }
func (c testConfig) GetHTTPAddr() string         { return ":0" }
func (c testConfig) GetCORSAllowAll() bool       { return false }
func (c testConfig) GetCORSOrigins() []string    { return []string{"http://localhost:8080"} }
func (c testConfig) GetRateLimitRPS() float64    { return c.rps }
func (c testConfig) GetRateLimitBurst() int      { return c.burst }

type fakePredictor struct {
	mu     sync.Mutex
	places []string
	resp   *transport.PredictionResponse
	err    error
}

func (f *fakePredictor) Predict(_ context.Context, place string) (*transport.PredictionResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.places = append(f.places, place)
	return f.resp, f.err
}

func (f *fakePredictor) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.places...)
}

func ptr(v float64) *float64 { return &v }

func safeResponse() *transport.PredictionResponse {
	return &transport.PredictionResponse{
		Place: "Paris",
		Weather: &transport.Weather{
			TemperatureC:    ptr(21.5),
			RainfallMM:      ptr(0),
			HumidityPercent: ptr(60),
		},
		Risk: "SAFE",
	}
}

func newTestEngine(p *fakePredictor, cfg testConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logger.Discard()
	h := NewHandler(p, cfg, validator.New(), log, func() time.Time {
		return time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	})
	app := &apphttp.App{
		Config:  cfg,
		Logger:  log,
		Modules: []apphttp.Module{&Module{handler: h}},
	}
	return router.New(app)
}

func defaultConfig() testConfig {
	return testConfig{dropStale: true, rps: 100, burst: 100}
}

func postForm(engine *gin.Engine, path, place string) *httptest.ResponseRecorder {
	form := url.Values{formFieldPlace: {place}}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func postJSON(engine *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

const openModal = `class="modal open"`

func TestIndex_RendersHiddenModal(t *testing.T) {
	engine := newTestEngine(&fakePredictor{}, defaultConfig())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `id="locationInput"`) {
		t.Fatal("expected the location input on the page")
	}
	if strings.Contains(body, openModal) {
		t.Fatal("expected modal hidden on first load")
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
}

func TestSearch_RendersModal(t *testing.T) {
	p := &fakePredictor{resp: safeResponse()}
	engine := newTestEngine(p, defaultConfig())

	w := postForm(engine, "/search", "  Paris  ")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	calls := p.calls()
	if len(calls) != 1 || calls[0] != "Paris" {
		t.Fatalf("expected one request for Paris, got %v", calls)
	}
	body := w.Body.String()
	for _, want := range []string{openModal, "Paris", "21.5°C", "0 mm", "60%", "SAFE", "3/5/2024, 2:07:09 PM"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in page", want)
		}
	}
}

func TestSearch_BlankShowsWarning(t *testing.T) {
	p := &fakePredictor{resp: safeResponse()}
	engine := newTestEngine(p, defaultConfig())

	w := postForm(engine, "/search", "   ")

	if len(p.calls()) != 0 {
		t.Fatalf("expected no prediction request, got %v", p.calls())
	}
	body := w.Body.String()
	if !strings.Contains(body, widget.MsgEnterLocation) {
		t.Fatalf("expected warning in page, got %s", body)
	}
	if strings.Contains(body, openModal) {
		t.Fatal("expected modal hidden")
	}
}

func TestSearch_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "application", err: apperr.Application("Location not found", http.StatusNotFound), want: "❌ Location not found"},
		{name: "transport", err: apperr.Transport("request failed", errors.New("connection refused")), want: widget.MsgServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(&fakePredictor{err: tt.err}, defaultConfig())

			body := postForm(engine, "/search", "Atlantis").Body.String()
			if !strings.Contains(body, tt.want) {
				t.Fatalf("expected %q in page", tt.want)
			}
			if strings.Contains(body, openModal) {
				t.Fatal("expected modal hidden")
			}
		})
	}
}

func TestClose_HidesModalAndKeepsValue(t *testing.T) {
	engine := newTestEngine(&fakePredictor{}, defaultConfig())

	body := postForm(engine, "/close", "Paris").Body.String()

	if strings.Contains(body, openModal) {
		t.Fatal("expected modal hidden after close")
	}
	if !strings.Contains(body, `value="Paris"`) {
		t.Fatal("expected input value to survive close")
	}
}

func TestPredictAPI(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		engine := newTestEngine(&fakePredictor{resp: safeResponse()}, defaultConfig())

		w := postJSON(engine, `{"place":"Paris"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got transport.PredictionResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Risk != "SAFE" || got.Weather == nil || *got.Weather.TemperatureC != 21.5 {
			t.Fatalf("unexpected response %+v", got)
		}
	})

	t.Run("blank place", func(t *testing.T) {
		p := &fakePredictor{resp: safeResponse()}
		engine := newTestEngine(p, defaultConfig())

		w := postJSON(engine, `{"place":"   "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if len(p.calls()) != 0 {
			t.Fatal("expected no prediction request")
		}
	})

	t.Run("upstream status", func(t *testing.T) {
		engine := newTestEngine(&fakePredictor{err: apperr.Application("Location not found", http.StatusNotFound)}, defaultConfig())

		w := postJSON(engine, `{"place":"Atlantis"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Location not found") {
			t.Fatalf("expected upstream message, got %s", w.Body.String())
		}
	})

	t.Run("transport", func(t *testing.T) {
		engine := newTestEngine(&fakePredictor{err: apperr.Transport("request failed", errors.New("eof"))}, defaultConfig())

		w := postJSON(engine, `{"place":"Paris"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestSearch_RateLimited(t *testing.T) {
	engine := newTestEngine(&fakePredictor{resp: safeResponse()}, testConfig{dropStale: true, rps: 0.001, burst: 1})

	if w := postForm(engine, "/search", "Paris"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := postForm(engine, "/search", "Paris"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	engine := newTestEngine(&fakePredictor{}, defaultConfig())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"ok"`) {
		t.Fatalf("unexpected health response %d %s", w.Code, w.Body.String())
	}
}

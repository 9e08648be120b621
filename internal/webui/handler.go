package webui

import (
	"bytes"
	"net/http"
	"time"

	"terrain_alert/internal/predict"
	"terrain_alert/internal/predict/transport"
	"terrain_alert/internal/widget"
	"terrain_alert/platform/apperr"
	"terrain_alert/platform/config"
	"terrain_alert/platform/httpkit"
	"terrain_alert/platform/logger"
	"terrain_alert/platform/validator"

	"github.com/gin-gonic/gin"
)

const formFieldPlace = "place"

// Handler serves the widget page. Every request gets its own widget over a
// Recorder; the page is rendered from the recorder's snapshot.
type Handler struct {
	predictor predict.Predictor
	cfg       config.WidgetConfig
	val       *validator.Validator
	log       *logger.Logger
	now       func() time.Time
}

func NewHandler(predictor predict.Predictor, cfg config.WidgetConfig, val *validator.Validator, log *logger.Logger, now func() time.Time) *Handler {
	return &Handler{predictor: predictor, cfg: cfg, val: val, log: log, now: now}
}

func (h *Handler) newWidget(rec *widget.Recorder) *widget.Widget {
	return widget.New(
		h.predictor,
		rec.Elements(),
		h.log,
		widget.WithClock(h.now),
		widget.WithDropStale(h.cfg.GetDropStaleResponses()),
		widget.WithValidator(h.val),
	)
}

// Index handles GET /
func (h *Handler) Index(c *gin.Context) {
	h.render(c, widget.NewRecorder("").Snapshot())
}

// Search handles POST /search with form field "place".
func (h *Handler) Search(c *gin.Context) {
	rec := widget.NewRecorder(c.PostForm(formFieldPlace))
	w := h.newWidget(rec)

	// Outcomes land on the recorder; the error only tells us which one.
	_ = w.Submit(c.Request.Context(), rec.Value())

	h.render(c, rec.Snapshot())
}

// Close handles POST /close from the overlay or the close control.
func (h *Handler) Close(c *gin.Context) {
	rec := widget.NewRecorder(c.PostForm(formFieldPlace))
	w := h.newWidget(rec)
	w.HandleClick(widget.TargetCloseControl)

	h.render(c, rec.Snapshot())
}

// Predict handles POST /api/v1/predict, proxying the prediction endpoint as JSON.
func (h *Handler) Predict(c *gin.Context) {
	var req transport.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.Validation("invalid request body").WithOp("webui.Predict"))
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation("place is required").WithOp("webui.Predict"))
		return
	}

	resp, err := h.predictor.Predict(c.Request.Context(), req.Place)
	if err != nil {
		if apperr.Is(err, apperr.KindTransport) {
			h.log.WithContext(c.Request.Context()).PredictionError(req.Place, err)
		}
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, resp)
}

func (h *Handler) render(c *gin.Context, s widget.Snapshot) {
	var buf bytes.Buffer
	if err := writePage(&buf, s); err != nil {
		_ = c.Error(err)
		httpkit.Error(c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

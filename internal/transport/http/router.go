package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Gunvolt24/csvgate/internal/domain"
	"github.com/Gunvolt24/csvgate/internal/ports"
	"github.com/Gunvolt24/csvgate/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// formFileField — имя поля формы загрузки (совпадает с формой /upload).
const formFileField = "file"

type Handler struct {
	service        ports.PreflightChecker
	log            ports.Logger
	handlerTimeout time.Duration
	maxUploadBytes int64
}

// NewHandler — handlerTimeout <= 0 и maxUploadBytes <= 0 отключают соответствующие ограничения.
func NewHandler(service ports.PreflightChecker, log ports.Logger, handlerTimeout time.Duration, maxUploadBytes int64) *Handler {
	return &Handler{
		service:        service,
		log:            log,
		handlerTimeout: handlerTimeout,
		maxUploadBytes: maxUploadBytes,
	}
}

// preflightResponse — тело ответа POST /preflight.
type preflightResponse struct {
	Accepted bool               `json:"accepted"`
	Outcome  domain.OutcomeKind `json:"outcome"`
	Reason   string             `json:"reason,omitempty"`
}

// NewRouter — otelServiceName != "" включает otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/preflight", httpx.LimitBody(h.maxUploadBytes), h.preflight)

	return r
}

func (h *Handler) preflight(c *gin.Context) {
	ctx := c.Request.Context()

	header, err := c.FormFile(formFileField)
	if err != nil {
		switch {
		case httpx.IsBodyTooLarge(err):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		case errors.Is(err, http.ErrMissingFile):
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		default:
			h.log.Warnf(ctx, "parse multipart form failed err=%v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		}
		return
	}

	if h.handlerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.handlerTimeout)
		defer cancel()
	}

	outcome := h.service.Check(ctx, domain.MultipartCandidate{Header: header})
	c.Set(httpx.OutcomeKey, string(outcome.Kind))

	status := http.StatusOK
	if !outcome.IsAccepted() {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, preflightResponse{
		Accepted: outcome.IsAccepted(),
		Outcome:  outcome.Kind,
		Reason:   outcome.Reason,
	})
}

package rest

import (
	"io"
	"net/http"

	"github.com/Gunvolt24/shopify_cod/internal/domain"
	"github.com/Gunvolt24/shopify_cod/internal/ports"
	"github.com/Gunvolt24/shopify_cod/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// maxBodySize — предел чтения входящего тела (1MB).
const maxBodySize = 1 << 20

type Handler struct {
	service ports.OrderSubmitService
	log     ports.Logger
}

func NewHandler(service ports.OrderSubmitService, log ports.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.CustomRecovery(recoveryHandler(h.log)))
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}

	// Любой метод, кроме зарегистрированного, — стабильный конверт 405.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		out := domain.Failure(http.StatusMethodNotAllowed, domain.CodeMethodNotAllowed, "method not allowed")
		c.JSON(out.Status, out.Body)
	})

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/apps/cod/order", h.submitOrder)

	return r
}

func (h *Handler) submitOrder(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodySize))
	if err != nil {
		h.log.Warnf(c.Request.Context(), "read body failed err=%v", err)
		out := domain.Failure(http.StatusBadRequest, domain.CodeBadRequestBody, "request body is not readable")
		c.JSON(out.Status, out.Body)
		return
	}

	in := domain.Submission{
		ClientID:  httpx.ClientIdentifier(c.Request),
		Shop:      c.Query("shop"),
		Signature: c.Query("signature"),
		RawBody:   body,
	}

	out := h.service.Submit(c.Request.Context(), in)
	c.JSON(out.Status, out.Body)
}

// recoveryHandler — внешняя граница: любая паника превращается
// в один стабильный конверт 500, без стека в ответе.
func recoveryHandler(log ports.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, rec any) {
		log.Errorf(c.Request.Context(), "panic recovered: %v", rec)
		out := domain.Failure(http.StatusInternalServerError, domain.CodeInternalServerError, "internal server error")
		c.AbortWithStatusJSON(out.Status, out.Body)
	}
}

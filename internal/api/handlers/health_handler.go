package handlers

import (
	"net/http"
	"time"

	"github.com/brunodias77/cartorio-app/internal/typesense"
	"github.com/gin-gonic/gin"
)

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	store *typesense.Client
}

// NewHealthHandler cria um novo handler de health check
func NewHealthHandler(store *typesense.Client) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe
// @Description Confirma que o processo está vivo, sem checar dependências externas
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe
// @Description Verifica se a aplicação está pronta para receber tráfego (valida o Typesense)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	resposta := HealthResponse{
		Status:    "ready",
		Checks:    map[string]string{"typesense": "ok"},
		Timestamp: time.Now().Unix(),
	}

	if !h.store.Saudavel(c.Request.Context()) {
		resposta.Checks["typesense"] = "failed"
		resposta.Status = "not_ready"
		resposta.Error = "Typesense indisponível"
		c.JSON(http.StatusServiceUnavailable, resposta)
		return
	}

	c.JSON(http.StatusOK, resposta)
}

// Health godoc
// @Summary Health check completo
// @Description Checagem de saúde para monitoramento externo de uptime
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resposta := HealthResponse{
		Status:    "healthy",
		Checks:    map[string]string{"typesense": "ok"},
		Timestamp: time.Now().Unix(),
	}

	if !h.store.Saudavel(c.Request.Context()) {
		resposta.Checks["typesense"] = "failed"
		resposta.Status = "unhealthy"
		resposta.Error = "Typesense indisponível"
		c.JSON(http.StatusServiceUnavailable, resposta)
		return
	}

	c.JSON(http.StatusOK, resposta)
}

package handlers

import (
	"net/http"

	"github.com/brunodias77/cartorio-app/internal/services"
	"github.com/gin-gonic/gin"
)

// StatusHandler expõe as opções de status da collection de referência.
type StatusHandler struct {
	service *services.StatusService
}

// NewStatusHandler cria um novo handler de status
func NewStatusHandler(service *services.StatusService) *StatusHandler {
	return &StatusHandler{service: service}
}

// ListarTodos godoc
// @Summary Lista as opções de status
// @Description Retorna todas as opções de status de confirmação, para popular os controles de seleção
// @Tags status
// @Produce json
// @Success 200 {object} models.RespostaServico[[]models.StatusConfirmacao]
// @Security BearerAuth
// @Router /api/v1/status [get]
func (h *StatusHandler) ListarTodos(c *gin.Context) {
	resultado := h.service.ListarTodos(c.Request.Context())
	if !resultado.Success {
		c.JSON(http.StatusBadGateway, resultado)
		return
	}
	c.JSON(http.StatusOK, resultado)
}

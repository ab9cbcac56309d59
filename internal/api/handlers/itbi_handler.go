package handlers

import (
	"net/http"
	"strconv"

	"github.com/brunodias77/cartorio-app/internal/models"
	"github.com/brunodias77/cartorio-app/internal/services"
	"github.com/brunodias77/cartorio-app/internal/utils"
	"github.com/gin-gonic/gin"
)

// ITBIHandler expõe o CRUD de registros de ITBI. Toda mutação é seguida de
// uma recarga completa da lista (mutar, depois recarregar), que volta na
// resposta para o painel não manter estado otimista.
type ITBIHandler struct {
	service *services.ITBIService
}

// NewITBIHandler cria um novo handler de ITBI
func NewITBIHandler(service *services.ITBIService) *ITBIHandler {
	return &ITBIHandler{service: service}
}

// Criar godoc
// @Summary Cria um registro de ITBI
// @Description Cria um novo registro com status iniciais "não solicitado/não enviado"; o protocolo é gerado quando omitido
// @Tags itbi
// @Accept json
// @Produce json
// @Param itbi body models.CriarITBIRequest true "Dados do ITBI"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/itbis [post]
func (h *ITBIHandler) Criar(c *gin.Context) {
	var req models.CriarITBIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	telefone, err := utils.ValidarTelefone(req.TelefoneCliente)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	protocolo := req.NumeroProtocolo
	if protocolo == "" {
		protocolo = utils.GerarProtocolo()
	}

	resultado := h.service.Criar(c.Request.Context(), req.NomeCliente, telefone, protocolo)
	if !resultado.Success {
		c.JSON(http.StatusBadGateway, gin.H{"error": resultado.Error})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"resultado": resultado,
		"itbis":     h.service.ListarTodos(c.Request.Context()),
	})
}

// ListarTodos godoc
// @Summary Lista todos os registros de ITBI
// @Description Retorna todos os registros ordenados por data de cadastro decrescente
// @Tags itbi
// @Produce json
// @Success 200 {object} models.RespostaServico[[]models.ITBI]
// @Security BearerAuth
// @Router /api/v1/itbis [get]
func (h *ITBIHandler) ListarTodos(c *gin.Context) {
	resultado := h.service.ListarTodos(c.Request.Context())
	if !resultado.Success {
		c.JSON(http.StatusBadGateway, resultado)
		return
	}
	c.JSON(http.StatusOK, resultado)
}

// BuscarPorID godoc
// @Summary Busca um registro de ITBI por id
// @Tags itbi
// @Produce json
// @Param id path string true "ID do registro"
// @Success 200 {object} models.RespostaServico[models.ITBI]
// @Failure 404 {object} models.RespostaServico[models.ITBI]
// @Security BearerAuth
// @Router /api/v1/itbis/{id} [get]
func (h *ITBIHandler) BuscarPorID(c *gin.Context) {
	resultado := h.service.BuscarPorID(c.Request.Context(), c.Param("id"))
	if !resultado.Success {
		status := http.StatusBadGateway
		if resultado.Error == services.MsgITBINaoEncontrado {
			status = http.StatusNotFound
		}
		c.JSON(status, resultado)
		return
	}
	c.JSON(http.StatusOK, resultado)
}

// BuscarPorProtocolo godoc
// @Summary Busca um registro pelo número de protocolo
// @Description Correspondência exata do número de protocolo; retorna no máximo um registro
// @Tags itbi
// @Produce json
// @Param numero path string true "Número de protocolo (ex: 2025-0001)"
// @Success 200 {object} models.RespostaServico[models.ITBI]
// @Failure 404 {object} models.RespostaServico[models.ITBI]
// @Security BearerAuth
// @Router /api/v1/itbis/protocolo/{numero} [get]
func (h *ITBIHandler) BuscarPorProtocolo(c *gin.Context) {
	resultado := h.service.BuscarPorProtocolo(c.Request.Context(), c.Param("numero"))
	if !resultado.Success {
		status := http.StatusBadGateway
		if resultado.Error == services.MsgProtocoloNaoEncontrado {
			status = http.StatusNotFound
		}
		c.JSON(status, resultado)
		return
	}
	c.JSON(http.StatusOK, resultado)
}

// BuscarPorStatus godoc
// @Summary Lista registros filtrados por status
// @Description Filtros opcionais enviadoId e solicitadoId combinados com semântica AND; ordenação por data de cadastro decrescente
// @Tags itbi
// @Produce json
// @Param enviadoId query int false "Código de status de envio (1..3)"
// @Param solicitadoId query int false "Código de status de solicitação (1..3)"
// @Success 200 {object} models.RespostaServico[[]models.ITBI]
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/itbis/busca [get]
func (h *ITBIHandler) BuscarPorStatus(c *gin.Context) {
	var enviadoID, solicitadoID *int

	if v := c.Query("enviadoId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "enviadoId inválido"})
			return
		}
		enviadoID = &id
	}
	if v := c.Query("solicitadoId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "solicitadoId inválido"})
			return
		}
		solicitadoID = &id
	}

	resultado := h.service.BuscarPorStatus(c.Request.Context(), enviadoID, solicitadoID)
	if !resultado.Success {
		c.JSON(http.StatusBadGateway, resultado)
		return
	}
	c.JSON(http.StatusOK, resultado)
}

// Atualizar godoc
// @Summary Atualiza campos de um registro de ITBI
// @Description Sobrescreve apenas os campos enviados; um código de status enviado também re-resolve a descrição par
// @Tags itbi
// @Accept json
// @Produce json
// @Param id path string true "ID do registro"
// @Param itbi body models.AtualizarITBIRequest true "Campos a atualizar"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/itbis/{id} [put]
func (h *ITBIHandler) Atualizar(c *gin.Context) {
	var req models.AtualizarITBIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	if req.TelefoneCliente != nil {
		telefone, err := utils.ValidarTelefone(*req.TelefoneCliente)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		req.TelefoneCliente = &telefone
	}

	resultado := h.service.Atualizar(c.Request.Context(), c.Param("id"), req)
	if !resultado.Success {
		status := http.StatusBadGateway
		if resultado.Error == services.MsgITBINaoEncontrado {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": resultado.Error})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"resultado": resultado,
		"itbis":     h.service.ListarTodos(c.Request.Context()),
	})
}

// AtualizarStatus godoc
// @Summary Atualiza um único campo de status
// @Description Grava o novo código e a descrição recém-resolvida juntos
// @Tags itbi
// @Accept json
// @Produce json
// @Param id path string true "ID do registro"
// @Param status body models.AtualizarStatusRequest true "Campo e novo código"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/itbis/{id}/status [patch]
func (h *ITBIHandler) AtualizarStatus(c *gin.Context) {
	var req models.AtualizarStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	resultado := h.service.AtualizarStatus(c.Request.Context(), c.Param("id"), req.Campo, req.NovoStatusID)
	if !resultado.Success {
		status := http.StatusBadGateway
		if resultado.Error == services.MsgITBINaoEncontrado {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": resultado.Error})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"resultado": resultado,
		"itbis":     h.service.ListarTodos(c.Request.Context()),
	})
}

// Excluir godoc
// @Summary Exclui um registro de ITBI
// @Description Remoção permanente; exige confirmação explícita via query confirm=true
// @Tags itbi
// @Produce json
// @Param id path string true "ID do registro"
// @Param confirm query bool true "Confirmação da exclusão"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/itbis/{id} [delete]
func (h *ITBIHandler) Excluir(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Exclusão exige confirmação (confirm=true). Esta ação não pode ser desfeita."})
		return
	}

	resultado := h.service.Excluir(c.Request.Context(), c.Param("id"))
	if !resultado.Success {
		status := http.StatusBadGateway
		if resultado.Error == services.MsgITBINaoEncontrado {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": resultado.Error})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"resultado": resultado,
		"itbis":     h.service.ListarTodos(c.Request.Context()),
	})
}

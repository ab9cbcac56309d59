package handlers

import (
	"net/http"

	"github.com/brunodias77/cartorio-app/internal/models"
	"github.com/brunodias77/cartorio-app/internal/services"
	"github.com/brunodias77/cartorio-app/internal/utils"
	"github.com/gin-gonic/gin"
)

// DashboardHandler monta o payload do painel: a lista completa, os
// contadores de resumo derivados localmente dela e o filtro de busca textual
// aplicado em memória (o filtro nunca refaz a consulta no armazém).
type DashboardHandler struct {
	service *services.ITBIService
}

// NewDashboardHandler cria um novo handler do painel
func NewDashboardHandler(service *services.ITBIService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Painel godoc
// @Summary Dados do painel de controle de ITBI
// @Description Lista carregada do armazém, contadores de resumo e filtro textual por nome do cliente ou protocolo (insensível a caixa e acentos)
// @Tags dashboard
// @Produce json
// @Param q query string false "Termo de busca"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) Painel(c *gin.Context) {
	resultado := h.service.ListarTodos(c.Request.Context())
	if !resultado.Success {
		c.JSON(http.StatusBadGateway, gin.H{"error": resultado.Error})
		return
	}

	itbis := resultado.Data
	// Contadores sempre sobre a lista completa, não sobre a filtrada.
	stats := models.CalcularEstatisticas(itbis)

	termo := c.Query("q")
	filtrados := FiltrarITBIs(itbis, termo)

	c.JSON(http.StatusOK, gin.H{
		"estatisticas": stats,
		"itbis":        montarLinhas(filtrados),
		"termo":        termo,
	})
}

// LinhaPainel é um registro pronto para exibição: telefone com máscara e
// data de cadastro em pt-BR, junto do registro original.
type LinhaPainel struct {
	models.ITBI
	TelefoneFormatado string `json:"telefoneFormatado"`
	DataFormatada     string `json:"dataFormatada"`
}

func montarLinhas(itbis []models.ITBI) []LinhaPainel {
	linhas := make([]LinhaPainel, 0, len(itbis))
	for _, itbi := range itbis {
		linha := LinhaPainel{
			ITBI:          itbi,
			DataFormatada: utils.FormatarData(itbi.DataCadastro),
		}
		if itbi.TelefoneCliente != nil {
			linha.TelefoneFormatado = utils.FormatarTelefone(*itbi.TelefoneCliente)
		}
		linhas = append(linhas, linha)
	}
	return linhas
}

// FiltrarITBIs aplica o filtro de busca local: substring insensível a caixa
// e acentos sobre o nome do cliente OU o número de protocolo. Termo vazio
// retorna a lista inalterada.
func FiltrarITBIs(itbis []models.ITBI, termo string) []models.ITBI {
	if termo == "" {
		return itbis
	}

	filtrados := make([]models.ITBI, 0, len(itbis))
	for _, itbi := range itbis {
		if utils.ContemNormalizado(itbi.NomeCliente, termo) || utils.ContemNormalizado(itbi.NumeroProtocolo, termo) {
			filtrados = append(filtrados, itbi)
		}
	}
	return filtrados
}

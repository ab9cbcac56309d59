package services

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/brunodias77/cartorio-app/internal/migration/schemas"
	"github.com/brunodias77/cartorio-app/internal/models"
	"github.com/brunodias77/cartorio-app/internal/ports"
	"go.uber.org/zap"
)

// StatusService resolve códigos de status da collection de referência
// `status_confirmacao` para seus rótulos.
type StatusService struct {
	store ports.ArmazemDocumentos
	log   *zap.Logger
}

// NewStatusService cria uma nova instância do StatusService
func NewStatusService(store ports.ArmazemDocumentos, log *zap.Logger) *StatusService {
	return &StatusService{
		store: store,
		log:   log,
	}
}

// Descrever retorna o rótulo configurado para o código de status. Nunca
// retorna erro: id inexistente ou falha de leitura viram o rótulo sentinela
// "Desconhecido", com a causa registrada para os operadores.
func (ss *StatusService) Descrever(ctx context.Context, statusID int) string {
	doc, err := ss.store.BuscarDocumento(ctx, schemas.ColecaoStatusConfirmacao, strconv.Itoa(statusID))
	if err != nil {
		ss.log.Warn("falha ao buscar descrição do status",
			zap.Int("status_id", statusID),
			zap.Error(err),
		)
		return models.DescricaoDesconhecida
	}

	descricao, ok := doc["descricao"].(string)
	if !ok || descricao == "" {
		ss.log.Warn("status sem campo descricao", zap.Int("status_id", statusID))
		return models.DescricaoDesconhecida
	}

	return descricao
}

// ListarTodos retorna todas as opções de status na ordem definida pelo
// armazém, para popular os controles de seleção. Falha vira Success=false
// com a mensagem do backend e lista vazia.
func (ss *StatusService) ListarTodos(ctx context.Context) *models.RespostaServico[[]models.StatusConfirmacao] {
	docs, err := ss.store.PesquisarDocumentos(ctx, schemas.ColecaoStatusConfirmacao, "", "", 0)
	if err != nil {
		ss.log.Error("falha ao listar status", zap.Error(err))
		resp := models.RespostaErro[[]models.StatusConfirmacao](err.Error())
		resp.Data = []models.StatusConfirmacao{}
		return resp
	}

	status := make([]models.StatusConfirmacao, 0, len(docs))
	for _, doc := range docs {
		var s models.StatusConfirmacao
		raw, _ := json.Marshal(doc)
		if err := json.Unmarshal(raw, &s); err != nil {
			ss.log.Warn("status em formato inesperado", zap.Error(err))
			continue
		}
		status = append(status, s)
	}

	return models.RespostaOK(status)
}

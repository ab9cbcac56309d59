package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/brunodias77/cartorio-app/internal/migration/schemas"
	"github.com/brunodias77/cartorio-app/internal/models"
	"github.com/brunodias77/cartorio-app/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Mensagens de erro expostas ao usuário final.
const (
	MsgITBINaoEncontrado      = "ITBI não encontrado"
	MsgProtocoloNaoEncontrado = "Protocolo não encontrado"
)

// ITBIService implementa o CRUD e as consultas sobre a collection `itbi`.
// Toda operação retorna o formato uniforme RespostaServico: falhas nunca
// propagam como erro Go, viram Success=false com a mensagem do backend.
//
// As descrições de status são desnormalizadas: toda escrita que toca um
// código de status resolve o rótulo correspondente via StatusService e grava
// código e rótulo juntos, para que a listagem não precise de join.
type ITBIService struct {
	store  ports.ArmazemDocumentos
	status *StatusService
	log    *zap.Logger

	// relógio injetável para os testes de dataCadastro
	agora func() time.Time
}

// NewITBIService cria uma nova instância do ITBIService
func NewITBIService(store ports.ArmazemDocumentos, status *StatusService, log *zap.Logger) *ITBIService {
	return &ITBIService{
		store:  store,
		status: status,
		log:    log,
		agora:  time.Now,
	}
}

// Criar persiste um novo registro de ITBI. Os dois códigos de status nascem
// em 1 com as descrições resolvidas no momento da escrita; dataCadastro é
// carimbado com o horário atual. telefone deve chegar já validado e sem
// máscara; vazio é gravado como null, nunca como string vazia.
func (is *ITBIService) Criar(ctx context.Context, nomeCliente, telefoneCliente, numeroProtocolo string) *models.RespostaServico[*models.ITBI] {
	enviadoDescricao := is.status.Descrever(ctx, models.StatusInicial)
	solicitadoDescricao := is.status.Descrever(ctx, models.StatusInicial)

	id := uuid.New().String()
	doc := map[string]interface{}{
		"id":                  id,
		"nomeCliente":         nomeCliente,
		"numeroProtocolo":     numeroProtocolo,
		"dataCadastro":        is.agora().Unix(),
		"enviadoId":           models.StatusInicial,
		"solicitadoId":        models.StatusInicial,
		"enviadoDescricao":    enviadoDescricao,
		"solicitadoDescricao": solicitadoDescricao,
	}
	if telefoneCliente != "" {
		doc["telefoneCliente"] = telefoneCliente
	} else {
		doc["telefoneCliente"] = nil
	}

	criado, err := is.store.CriarDocumento(ctx, schemas.ColecaoITBI, doc)
	if err != nil {
		is.log.Error("falha ao criar ITBI", zap.Error(err))
		return models.RespostaErro[*models.ITBI](err.Error())
	}

	itbi, err := decodificarITBI(criado)
	if err != nil {
		is.log.Error("ITBI criado em formato inesperado", zap.String("id", id), zap.Error(err))
		return models.RespostaErro[*models.ITBI](err.Error())
	}

	resp := models.RespostaOK(itbi)
	resp.ID = itbi.ID
	return resp
}

// BuscarPorID faz a leitura pontual de um registro.
func (is *ITBIService) BuscarPorID(ctx context.Context, id string) *models.RespostaServico[*models.ITBI] {
	doc, err := is.store.BuscarDocumento(ctx, schemas.ColecaoITBI, id)
	if err != nil {
		if errors.Is(err, ports.ErrDocumentoNaoEncontrado) {
			return models.RespostaErro[*models.ITBI](MsgITBINaoEncontrado)
		}
		is.log.Error("falha ao buscar ITBI", zap.String("id", id), zap.Error(err))
		return models.RespostaErro[*models.ITBI](err.Error())
	}

	itbi, err := decodificarITBI(doc)
	if err != nil {
		return models.RespostaErro[*models.ITBI](err.Error())
	}

	return models.RespostaOK(itbi)
}

// ListarTodos retorna todos os registros ordenados por dataCadastro
// decrescente (mais recente primeiro).
func (is *ITBIService) ListarTodos(ctx context.Context) *models.RespostaServico[[]models.ITBI] {
	return is.pesquisar(ctx, "")
}

// BuscarPorProtocolo retorna no máximo um registro cujo numeroProtocolo
// corresponde exatamente ao informado.
func (is *ITBIService) BuscarPorProtocolo(ctx context.Context, numeroProtocolo string) *models.RespostaServico[*models.ITBI] {
	// Backticks protegem o hífen do formato "<ano>-<sequencial>" na
	// sintaxe filter_by.
	filtro := fmt.Sprintf("numeroProtocolo:=`%s`", numeroProtocolo)

	docs, err := is.store.PesquisarDocumentos(ctx, schemas.ColecaoITBI, filtro, "", 1)
	if err != nil {
		is.log.Error("falha ao buscar por protocolo", zap.String("protocolo", numeroProtocolo), zap.Error(err))
		return models.RespostaErro[*models.ITBI](err.Error())
	}
	if len(docs) == 0 {
		return models.RespostaErro[*models.ITBI](MsgProtocoloNaoEncontrado)
	}

	itbi, err := decodificarITBI(docs[0])
	if err != nil {
		return models.RespostaErro[*models.ITBI](err.Error())
	}

	return models.RespostaOK(itbi)
}

// BuscarPorStatus retorna os registros que satisfazem todos os filtros
// informados (semântica AND; filtro nil não é aplicado), ordenados por
// dataCadastro decrescente. O Typesense resolve filtro composto + sort
// nativamente, sem índice adicional.
func (is *ITBIService) BuscarPorStatus(ctx context.Context, enviadoID, solicitadoID *int) *models.RespostaServico[[]models.ITBI] {
	filtro := ""
	if enviadoID != nil {
		filtro = fmt.Sprintf("enviadoId:=%d", *enviadoID)
	}
	if solicitadoID != nil {
		if filtro != "" {
			filtro += " && "
		}
		filtro += fmt.Sprintf("solicitadoId:=%d", *solicitadoID)
	}

	return is.pesquisar(ctx, filtro)
}

// Atualizar sobrescreve os campos informados do registro. Telefone vazio é
// gravado como null; um código de status informado também re-resolve e grava
// a descrição par. dataCadastro nunca é alterado.
func (is *ITBIService) Atualizar(ctx context.Context, id string, dados models.AtualizarITBIRequest) *models.RespostaServico[*models.ITBI] {
	campos := make(map[string]interface{})

	if dados.NomeCliente != nil {
		campos["nomeCliente"] = *dados.NomeCliente
	}
	if dados.TelefoneCliente != nil {
		if *dados.TelefoneCliente == "" {
			campos["telefoneCliente"] = nil
		} else {
			campos["telefoneCliente"] = *dados.TelefoneCliente
		}
	}
	if dados.NumeroProtocolo != nil {
		campos["numeroProtocolo"] = *dados.NumeroProtocolo
	}
	if dados.EnviadoID != nil {
		campos[models.CampoEnviadoID] = *dados.EnviadoID
		campos[models.CampoEnviadoDescricao] = is.status.Descrever(ctx, *dados.EnviadoID)
	}
	if dados.SolicitadoID != nil {
		campos[models.CampoSolicitadoID] = *dados.SolicitadoID
		campos[models.CampoSolicitadoDescricao] = is.status.Descrever(ctx, *dados.SolicitadoID)
	}

	if len(campos) == 0 {
		return models.RespostaOK[*models.ITBI](nil)
	}

	if err := is.store.AtualizarDocumento(ctx, schemas.ColecaoITBI, id, campos); err != nil {
		if errors.Is(err, ports.ErrDocumentoNaoEncontrado) {
			return models.RespostaErro[*models.ITBI](MsgITBINaoEncontrado)
		}
		is.log.Error("falha ao atualizar ITBI", zap.String("id", id), zap.Error(err))
		return models.RespostaErro[*models.ITBI](err.Error())
	}

	return models.RespostaOK[*models.ITBI](nil)
}

// AtualizarStatus atualiza um único campo de status (enviadoId ou
// solicitadoId), gravando código e rótulo recém-resolvido juntos.
func (is *ITBIService) AtualizarStatus(ctx context.Context, id, campo string, novoStatusID int) *models.RespostaServico[*models.ITBI] {
	var descricaoCampo string
	switch campo {
	case models.CampoEnviadoID:
		descricaoCampo = models.CampoEnviadoDescricao
	case models.CampoSolicitadoID:
		descricaoCampo = models.CampoSolicitadoDescricao
	default:
		return models.RespostaErro[*models.ITBI](fmt.Sprintf("campo de status inválido: %s", campo))
	}

	campos := map[string]interface{}{
		campo:          novoStatusID,
		descricaoCampo: is.status.Descrever(ctx, novoStatusID),
	}

	if err := is.store.AtualizarDocumento(ctx, schemas.ColecaoITBI, id, campos); err != nil {
		if errors.Is(err, ports.ErrDocumentoNaoEncontrado) {
			return models.RespostaErro[*models.ITBI](MsgITBINaoEncontrado)
		}
		is.log.Error("falha ao atualizar status do ITBI",
			zap.String("id", id),
			zap.String("campo", campo),
			zap.Error(err),
		)
		return models.RespostaErro[*models.ITBI](err.Error())
	}

	return models.RespostaOK[*models.ITBI](nil)
}

// Excluir remove o registro permanentemente. Não há soft-delete.
func (is *ITBIService) Excluir(ctx context.Context, id string) *models.RespostaServico[*models.ITBI] {
	if err := is.store.ExcluirDocumento(ctx, schemas.ColecaoITBI, id); err != nil {
		if errors.Is(err, ports.ErrDocumentoNaoEncontrado) {
			return models.RespostaErro[*models.ITBI](MsgITBINaoEncontrado)
		}
		is.log.Error("falha ao excluir ITBI", zap.String("id", id), zap.Error(err))
		return models.RespostaErro[*models.ITBI](err.Error())
	}

	return models.RespostaOK[*models.ITBI](nil)
}

func (is *ITBIService) pesquisar(ctx context.Context, filtro string) *models.RespostaServico[[]models.ITBI] {
	docs, err := is.store.PesquisarDocumentos(ctx, schemas.ColecaoITBI, filtro, "dataCadastro:desc", 0)
	if err != nil {
		is.log.Error("falha ao listar ITBIs", zap.String("filtro", filtro), zap.Error(err))
		return models.RespostaErro[[]models.ITBI](err.Error())
	}

	itbis := make([]models.ITBI, 0, len(docs))
	for _, doc := range docs {
		itbi, err := decodificarITBI(doc)
		if err != nil {
			is.log.Warn("ITBI em formato inesperado, ignorado", zap.Error(err))
			continue
		}
		itbis = append(itbis, *itbi)
	}

	return models.RespostaOK(itbis)
}

// decodificarITBI converte o documento cru do armazém para o modelo.
func decodificarITBI(doc map[string]interface{}) (*models.ITBI, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar documento: %v", err)
	}

	var itbi models.ITBI
	if err := json.Unmarshal(raw, &itbi); err != nil {
		return nil, fmt.Errorf("erro ao deserializar documento: %v", err)
	}

	return &itbi, nil
}

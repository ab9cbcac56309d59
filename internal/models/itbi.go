package models

// ITBI representa um registro de transferência de imóvel (ITBI) do cartório.
// O documento é armazenado na collection `itbi` do Typesense.
//
// TelefoneCliente é armazenado sem máscara (somente dígitos, 10 ou 11) e usa
// ponteiro para distinguir ausente (null) de vazio. DataCadastro é o unix
// timestamp (segundos) da criação, gravado uma única vez e nunca alterado.
type ITBI struct {
	ID                  string  `json:"id"`
	NomeCliente         string  `json:"nomeCliente"`
	TelefoneCliente     *string `json:"telefoneCliente"`
	NumeroProtocolo     string  `json:"numeroProtocolo"`
	DataCadastro        int64   `json:"dataCadastro"`
	SolicitadoID        int     `json:"solicitadoId"`
	EnviadoID           int     `json:"enviadoId"`
	SolicitadoDescricao string  `json:"solicitadoDescricao"`
	EnviadoDescricao    string  `json:"enviadoDescricao"`
}

// CriarITBIRequest é o corpo da requisição de criação de um ITBI.
// @Description Dados para criar um novo registro de ITBI
type CriarITBIRequest struct {
	// Nome completo do cliente
	NomeCliente string `json:"nomeCliente" binding:"required" example:"Maria Silva"`
	// Telefone com DDD, com ou sem máscara; vazio é permitido
	TelefoneCliente string `json:"telefoneCliente" binding:"omitempty,telefone" example:"(11) 98765-4321"`
	// Número de protocolo; gerado automaticamente quando omitido
	NumeroProtocolo string `json:"numeroProtocolo" example:"2025-0001"`
}

// AtualizarITBIRequest é o corpo da requisição de edição. Campos nil não são
// alterados no documento.
// @Description Dados para atualização parcial de um registro de ITBI
type AtualizarITBIRequest struct {
	NomeCliente     *string `json:"nomeCliente" binding:"omitempty,min=1" example:"Maria Silva"`
	TelefoneCliente *string `json:"telefoneCliente" binding:"omitempty,telefone" example:"(11) 98765-4321"`
	NumeroProtocolo *string `json:"numeroProtocolo" binding:"omitempty,min=1" example:"2025-0001"`
	SolicitadoID    *int    `json:"solicitadoId" binding:"omitempty,min=1,max=3" example:"2"`
	EnviadoID       *int    `json:"enviadoId" binding:"omitempty,min=1,max=3" example:"3"`
}

// AtualizarStatusRequest atualiza um único campo de status.
// @Description Atualização de um campo de status (enviadoId ou solicitadoId)
type AtualizarStatusRequest struct {
	// Campo a atualizar: "enviadoId" ou "solicitadoId"
	Campo        string `json:"campo" binding:"required,oneof=enviadoId solicitadoId" example:"enviadoId"`
	NovoStatusID int    `json:"novoStatusId" binding:"required,min=1,max=3" example:"3"`
}

// Nomes dos campos de status e seus pares de descrição, como gravados no
// documento.
const (
	CampoEnviadoID           = "enviadoId"
	CampoSolicitadoID        = "solicitadoId"
	CampoEnviadoDescricao    = "enviadoDescricao"
	CampoSolicitadoDescricao = "solicitadoDescricao"
)

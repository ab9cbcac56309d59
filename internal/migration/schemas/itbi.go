package schemas

import "github.com/typesense/typesense-go/v3/typesense/api"

// Nomes das collections do armazém de documentos.
const (
	ColecaoITBI              = "itbi"
	ColecaoStatusConfirmacao = "status_confirmacao"
)

// SchemaITBI descreve a collection `itbi`. dataCadastro é o campo de
// ordenação padrão; os campos de status são indexados com facet para a
// consulta combinada por enviadoId e solicitadoId com sort por dataCadastro
// (o Typesense resolve filtro composto + ordenação nativamente, sem índice
// adicional).
func SchemaITBI() *SchemaDefinition {
	return &SchemaDefinition{
		Name: ColecaoITBI,
		Fields: []api.Field{
			{Name: "nomeCliente", Type: "string"},
			{Name: "telefoneCliente", Type: "string", Optional: BoolPtr(true)},
			{Name: "numeroProtocolo", Type: "string"},
			{Name: "dataCadastro", Type: "int64"},
			{Name: "solicitadoId", Type: "int32", Facet: BoolPtr(true)},
			{Name: "enviadoId", Type: "int32", Facet: BoolPtr(true)},
			{Name: "solicitadoDescricao", Type: "string"},
			{Name: "enviadoDescricao", Type: "string"},
		},
		SortingField: "dataCadastro",
	}
}

// SchemaStatusConfirmacao descreve a collection de referência
// `status_confirmacao` (código de status -> descrição). O conteúdo é
// semeado pelo cmd/seed e tratado como somente leitura pela aplicação.
func SchemaStatusConfirmacao() *SchemaDefinition {
	return &SchemaDefinition{
		Name: ColecaoStatusConfirmacao,
		Fields: []api.Field{
			{Name: "descricao", Type: "string"},
		},
	}
}

// Package ports define os contratos entre a camada de serviços e os
// colaboradores externos (armazém de documentos e provedor de identidade).
package ports

import (
	"context"
	"errors"
)

// ErrDocumentoNaoEncontrado é retornado (embrulhado) pelas implementações do
// armazém quando o documento pedido não existe.
var ErrDocumentoNaoEncontrado = errors.New("documento não encontrado")

// ArmazemDocumentos é o contrato da camada de dados com o armazém de
// documentos. Implementado por internal/typesense.Client; os testes usam o
// mock de internal/mocks.
type ArmazemDocumentos interface {
	CriarDocumento(ctx context.Context, colecao string, doc map[string]interface{}) (map[string]interface{}, error)
	BuscarDocumento(ctx context.Context, colecao, id string) (map[string]interface{}, error)
	AtualizarDocumento(ctx context.Context, colecao, id string, campos map[string]interface{}) error
	ExcluirDocumento(ctx context.Context, colecao, id string) error
	PesquisarDocumentos(ctx context.Context, colecao, filtro, ordenacao string, porPagina int) ([]map[string]interface{}, error)
}

// Package mocks fornece implementações de teste dos contratos de
// internal/ports, com comportamento injetável por campo de função.
package mocks

import (
	"context"

	"github.com/brunodias77/cartorio-app/internal/ports"
)

// MockArmazemDocumentos implementa ports.ArmazemDocumentos para os testes.
type MockArmazemDocumentos struct {
	CriarDocumentoFunc      func(ctx context.Context, colecao string, doc map[string]interface{}) (map[string]interface{}, error)
	BuscarDocumentoFunc     func(ctx context.Context, colecao, id string) (map[string]interface{}, error)
	AtualizarDocumentoFunc  func(ctx context.Context, colecao, id string, campos map[string]interface{}) error
	ExcluirDocumentoFunc    func(ctx context.Context, colecao, id string) error
	PesquisarDocumentosFunc func(ctx context.Context, colecao, filtro, ordenacao string, porPagina int) ([]map[string]interface{}, error)
}

var _ ports.ArmazemDocumentos = (*MockArmazemDocumentos)(nil)

func (m *MockArmazemDocumentos) CriarDocumento(ctx context.Context, colecao string, doc map[string]interface{}) (map[string]interface{}, error) {
	if m.CriarDocumentoFunc != nil {
		return m.CriarDocumentoFunc(ctx, colecao, doc)
	}
	return doc, nil
}

func (m *MockArmazemDocumentos) BuscarDocumento(ctx context.Context, colecao, id string) (map[string]interface{}, error) {
	if m.BuscarDocumentoFunc != nil {
		return m.BuscarDocumentoFunc(ctx, colecao, id)
	}
	return nil, ports.ErrDocumentoNaoEncontrado
}

func (m *MockArmazemDocumentos) AtualizarDocumento(ctx context.Context, colecao, id string, campos map[string]interface{}) error {
	if m.AtualizarDocumentoFunc != nil {
		return m.AtualizarDocumentoFunc(ctx, colecao, id, campos)
	}
	return nil
}

func (m *MockArmazemDocumentos) ExcluirDocumento(ctx context.Context, colecao, id string) error {
	if m.ExcluirDocumentoFunc != nil {
		return m.ExcluirDocumentoFunc(ctx, colecao, id)
	}
	return nil
}

func (m *MockArmazemDocumentos) PesquisarDocumentos(ctx context.Context, colecao, filtro, ordenacao string, porPagina int) ([]map[string]interface{}, error) {
	if m.PesquisarDocumentosFunc != nil {
		return m.PesquisarDocumentosFunc(ctx, colecao, filtro, ordenacao, porPagina)
	}
	return []map[string]interface{}{}, nil
}

// ArmazemEmMemoria é um ports.ArmazemDocumentos em memória para testes de
// integração leve: guarda documentos por collection e id, aplica filtros de
// igualdade simples e ordenação por dataCadastro.
type ArmazemEmMemoria struct {
	Colecoes map[string]map[string]map[string]interface{}
}

// NewArmazemEmMemoria cria um armazém vazio.
func NewArmazemEmMemoria() *ArmazemEmMemoria {
	return &ArmazemEmMemoria{
		Colecoes: make(map[string]map[string]map[string]interface{}),
	}
}

var _ ports.ArmazemDocumentos = (*ArmazemEmMemoria)(nil)

func (a *ArmazemEmMemoria) colecao(nome string) map[string]map[string]interface{} {
	if a.Colecoes[nome] == nil {
		a.Colecoes[nome] = make(map[string]map[string]interface{})
	}
	return a.Colecoes[nome]
}

func (a *ArmazemEmMemoria) CriarDocumento(_ context.Context, colecao string, doc map[string]interface{}) (map[string]interface{}, error) {
	id, _ := doc["id"].(string)
	copia := copiarDoc(doc)
	a.colecao(colecao)[id] = copia
	return copiarDoc(copia), nil
}

func (a *ArmazemEmMemoria) BuscarDocumento(_ context.Context, colecao, id string) (map[string]interface{}, error) {
	doc, ok := a.colecao(colecao)[id]
	if !ok {
		return nil, ports.ErrDocumentoNaoEncontrado
	}
	return copiarDoc(doc), nil
}

func (a *ArmazemEmMemoria) AtualizarDocumento(_ context.Context, colecao, id string, campos map[string]interface{}) error {
	doc, ok := a.colecao(colecao)[id]
	if !ok {
		return ports.ErrDocumentoNaoEncontrado
	}
	for k, v := range campos {
		doc[k] = v
	}
	return nil
}

func (a *ArmazemEmMemoria) ExcluirDocumento(_ context.Context, colecao, id string) error {
	if _, ok := a.colecao(colecao)[id]; !ok {
		return ports.ErrDocumentoNaoEncontrado
	}
	delete(a.colecao(colecao), id)
	return nil
}

func (a *ArmazemEmMemoria) PesquisarDocumentos(_ context.Context, colecao, filtro, ordenacao string, porPagina int) ([]map[string]interface{}, error) {
	docs := make([]map[string]interface{}, 0)
	for _, doc := range a.colecao(colecao) {
		if filtroCasa(doc, filtro) {
			docs = append(docs, copiarDoc(doc))
		}
	}

	if ordenacao == "dataCadastro:desc" {
		ordenarPorDataDesc(docs)
	}

	if porPagina > 0 && len(docs) > porPagina {
		docs = docs[:porPagina]
	}
	return docs, nil
}

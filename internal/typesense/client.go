// Package typesense encapsula o acesso ao armazém de documentos (Typesense),
// expondo operações genéricas de ponto (criar, buscar, atualizar, excluir) e
// de consulta filtrada/ordenada sobre uma collection.
package typesense

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/brunodias77/cartorio-app/internal/config"
	"github.com/brunodias77/cartorio-app/internal/ports"
	"github.com/typesense/typesense-go/v3/typesense"
	api "github.com/typesense/typesense-go/v3/typesense/api"
	"github.com/typesense/typesense-go/v3/typesense/api/pointer"
)

type Client struct {
	client *typesense.Client
}

func NewClient(cfg *config.Config) *Client {
	typesenseClient := typesense.NewClient(
		typesense.WithServer(fmt.Sprintf("%s://%s:%s", cfg.TypesenseProtocol, cfg.TypesenseHost, cfg.TypesensePort)),
		typesense.WithAPIKey(cfg.TypesenseAPIKey),
	)

	return &Client{client: typesenseClient}
}

// GetClient expõe o cliente Typesense subjacente (health check, seed).
func (c *Client) GetClient() *typesense.Client {
	return c.client
}

// Saudavel verifica a conectividade com o Typesense.
func (c *Client) Saudavel(ctx context.Context) bool {
	_, err := c.client.Health(ctx, 2*time.Second)
	return err == nil
}

// CriarDocumento insere um documento na collection. O chamador fornece o
// campo "id"; o documento criado é retornado como gravado.
func (c *Client) CriarDocumento(ctx context.Context, colecao string, doc map[string]interface{}) (map[string]interface{}, error) {
	result, err := c.client.Collection(colecao).Documents().Create(ctx, doc, &api.DocumentIndexParameters{})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// BuscarDocumento faz a leitura pontual de um documento por id.
func (c *Client) BuscarDocumento(ctx context.Context, colecao, id string) (map[string]interface{}, error) {
	result, err := c.client.Collection(colecao).Document(id).Retrieve(ctx)
	if err != nil {
		return nil, mapearErro(err, colecao, id)
	}
	return result, nil
}

// AtualizarDocumento sobrescreve apenas os campos informados.
func (c *Client) AtualizarDocumento(ctx context.Context, colecao, id string, campos map[string]interface{}) error {
	_, err := c.client.Collection(colecao).Document(id).Update(ctx, campos, &api.DocumentIndexParameters{})
	return mapearErro(err, colecao, id)
}

// ExcluirDocumento remove o documento permanentemente.
func (c *Client) ExcluirDocumento(ctx context.Context, colecao, id string) error {
	_, err := c.client.Collection(colecao).Document(id).Delete(ctx)
	return mapearErro(err, colecao, id)
}

// paginaMax é o teto de resultados por página do Typesense.
const paginaMax = 250

// PesquisarDocumentos executa uma consulta na collection. filtro usa a
// sintaxe filter_by do Typesense (vazio = sem filtro); ordenacao usa a
// sintaxe sort_by (ex: "dataCadastro:desc"). porPagina <= 0 retorna todos os
// resultados, paginando em blocos de 250 (o teto por página do Typesense).
func (c *Client) PesquisarDocumentos(ctx context.Context, colecao, filtro, ordenacao string, porPagina int) ([]map[string]interface{}, error) {
	porPaginaReq := porPagina
	if porPaginaReq <= 0 || porPaginaReq > paginaMax {
		porPaginaReq = paginaMax
	}

	docs := make([]map[string]interface{}, 0)
	for pagina := 1; ; pagina++ {
		searchParams := &api.SearchCollectionParams{
			Q:       pointer.String("*"),
			PerPage: pointer.Int(porPaginaReq),
			Page:    pointer.Int(pagina),
		}
		if filtro != "" {
			searchParams.FilterBy = pointer.String(filtro)
		}
		if ordenacao != "" {
			searchParams.SortBy = pointer.String(ordenacao)
		}

		result, err := c.client.Collection(colecao).Documents().Search(ctx, searchParams)
		if err != nil {
			return nil, err
		}

		recebidos := 0
		if result.Hits != nil {
			recebidos = len(*result.Hits)
			for _, hit := range *result.Hits {
				if hit.Document != nil {
					docs = append(docs, *hit.Document)
				}
			}
		}

		if porPagina > 0 && len(docs) >= porPagina {
			return docs[:porPagina], nil
		}
		if recebidos < porPaginaReq {
			return docs, nil
		}
	}
}

// mapearErro traduz o 404 do Typesense para o erro de contrato
// ports.ErrDocumentoNaoEncontrado; demais erros passam inalterados.
func mapearErro(err error, colecao, id string) error {
	if err == nil {
		return nil
	}
	var httpErr *typesense.HTTPError
	if errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound {
		return fmt.Errorf("%w: %s/%s", ports.ErrDocumentoNaoEncontrado, colecao, id)
	}
	return err
}

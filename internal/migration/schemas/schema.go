// Package schemas define os schemas das collections Typesense da aplicação.
package schemas

import (
	"fmt"
	"sync"

	"github.com/typesense/typesense-go/v3/typesense/api"
)

// SchemaDefinition define o schema de uma collection Typesense
type SchemaDefinition struct {
	Name         string
	Fields       []api.Field
	SortingField string
}

// CollectionSchema monta o schema da API do Typesense a partir da definição.
func (s *SchemaDefinition) CollectionSchema() *api.CollectionSchema {
	schema := &api.CollectionSchema{
		Name:   s.Name,
		Fields: s.Fields,
	}
	if s.SortingField != "" {
		schema.DefaultSortingField = StringPtr(s.SortingField)
	}
	return schema
}

// Registry mantém o registro de schemas por collection
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*SchemaDefinition
}

// NewRegistry cria um novo registro com os schemas da aplicação
func NewRegistry() *Registry {
	r := &Registry{
		schemas: make(map[string]*SchemaDefinition),
	}

	r.Register(SchemaITBI())
	r.Register(SchemaStatusConfirmacao())

	return r
}

// Register registra um schema pela collection que ele descreve
func (r *Registry) Register(schema *SchemaDefinition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[schema.Name] = schema
}

// GetSchema retorna o schema de uma collection
func (r *Registry) GetSchema(name string) (*SchemaDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schema, exists := r.schemas[name]
	if !exists {
		return nil, fmt.Errorf("schema da collection '%s' não encontrado", name)
	}

	return schema, nil
}

// ListCollections retorna os nomes de todas as collections registradas
func (r *Registry) ListCollections() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}

	return names
}

// Helper functions para criação de schemas

// StringPtr retorna um ponteiro para string
func StringPtr(s string) *string {
	return &s
}

// BoolPtr retorna um ponteiro para bool
func BoolPtr(b bool) *bool {
	return &b
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"

	"github.com/brunodias77/cartorio-app/internal/config"
	"github.com/brunodias77/cartorio-app/internal/migration/schemas"
)

var dryRun = flag.Bool("dry-run", false, "Mostra o que seria criado sem modificar o Typesense")

// statusSeeds são os status de confirmação conhecidos pelo painel. O seed é
// idempotente: rodar de novo apenas regrava as mesmas descrições.
var statusSeeds = []struct {
	ID        string
	Descricao string
}{
	{"1", "Não"},
	{"2", "Em Andamento"},
	{"3", "Sim"},
}

func main() {
	flag.Parse()

	cfg := config.LoadConfig()

	client := typesense.NewClient(
		typesense.WithServer(fmt.Sprintf("%s://%s:%s", cfg.TypesenseProtocol, cfg.TypesenseHost, cfg.TypesensePort)),
		typesense.WithAPIKey(cfg.TypesenseAPIKey),
		typesense.WithConnectionTimeout(2*time.Minute),
	)

	registry := schemas.NewRegistry()
	ctx := context.Background()

	for _, name := range registry.ListCollections() {
		if err := garantirColecao(ctx, client, registry, name); err != nil {
			log.Printf("❌ Erro ao garantir collection %s: %v", name, err)
			os.Exit(1)
		}
	}

	if err := semearStatus(ctx, client); err != nil {
		log.Printf("❌ Erro ao semear status de confirmação: %v", err)
		os.Exit(1)
	}

	log.Println("✅ Seed concluído")
}

// garantirColecao cria a collection se ela ainda não existir.
func garantirColecao(ctx context.Context, client *typesense.Client, registry *schemas.Registry, name string) error {
	_, err := client.Collection(name).Retrieve(ctx)
	if err == nil {
		log.Printf("Collection %s já existe", name)
		return nil
	}
	if !strings.Contains(err.Error(), "404") && !strings.Contains(strings.ToLower(err.Error()), "not found") {
		return err
	}

	schema, err := registry.GetSchema(name)
	if err != nil {
		return err
	}

	if *dryRun {
		log.Printf("[dry-run] Criaria a collection %s", name)
		return nil
	}

	if _, err := client.Collections().Create(ctx, schema.CollectionSchema()); err != nil {
		return err
	}
	log.Printf("Collection %s criada", name)
	return nil
}

// semearStatus grava os status conhecidos via upsert.
func semearStatus(ctx context.Context, client *typesense.Client) error {
	for _, seed := range statusSeeds {
		doc := map[string]interface{}{
			"id":        seed.ID,
			"descricao": seed.Descricao,
		}

		if *dryRun {
			log.Printf("[dry-run] Upsert status %s => %q", seed.ID, seed.Descricao)
			continue
		}

		_, err := client.Collection(schemas.ColecaoStatusConfirmacao).Documents().Upsert(ctx, doc, &api.DocumentIndexParameters{})
		if err != nil {
			return fmt.Errorf("status %s: %w", seed.ID, err)
		}
		log.Printf("Status %s => %q", seed.ID, seed.Descricao)
	}
	return nil
}

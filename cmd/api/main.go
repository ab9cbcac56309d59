package main

import (
	"log"

	"go.uber.org/zap"

	_ "github.com/brunodias77/cartorio-app/docs"
	"github.com/brunodias77/cartorio-app/internal/api/routes"
	"github.com/brunodias77/cartorio-app/internal/config"
	"github.com/brunodias77/cartorio-app/internal/observability"
)

// @title           Cartório ITBI API
// @version         1.0
// @description     API de gestão de solicitações de ITBI do cartório, com busca e persistência via Typesense

// @contact.name   Cartório
// @contact.email  contato@cartorio.app

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {

	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Erro ao criar logger: %v", err)
	}
	defer logger.Sync()

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	r := routes.SetupRouter(cfg, logger)

	log.Printf("Servidor iniciado na porta %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}
}

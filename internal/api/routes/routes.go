package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/brunodias77/cartorio-app/internal/api/handlers"
	"github.com/brunodias77/cartorio-app/internal/auth"
	"github.com/brunodias77/cartorio-app/internal/config"
	middlewares "github.com/brunodias77/cartorio-app/internal/middleware"
	"github.com/brunodias77/cartorio-app/internal/services"
	"github.com/brunodias77/cartorio-app/internal/typesense"
	"github.com/brunodias77/cartorio-app/internal/utils"
)

func SetupRouter(cfg *config.Config, log *zap.Logger) *gin.Engine {
	registrarValidadores()

	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middlewares.Tracing())

	typesenseClient := typesense.NewClient(cfg)
	identidade := auth.NewIdentityClient(cfg)

	statusService := services.NewStatusService(typesenseClient, log)
	itbiService := services.NewITBIService(typesenseClient, statusService, log)
	sessaoService := services.NewSessaoService(identidade, cfg.SessionJWTSecret, cfg.SessionDuration, log)

	itbiHandler := handlers.NewITBIHandler(itbiService)
	statusHandler := handlers.NewStatusHandler(statusService)
	dashboardHandler := handlers.NewDashboardHandler(itbiService)
	authHandler := handlers.NewAuthHandler(sessaoService)
	healthHandler := handlers.NewHealthHandler(typesenseClient)

	// Rotas de página: quem chega sem sessão é levado ao login e volta
	// ao destino original depois de autenticar.
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})
	r.GET("/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"mensagem": "Autentique-se em /api/v1/auth/login",
			"redirect": c.Query("redirect"),
		})
	})
	r.GET("/dashboard", middlewares.RequireSessionOrRedirect(sessaoService), dashboardHandler.Painel)

	api := r.Group("/api/v1")
	{
		autenticacao := api.Group("/auth")
		{
			autenticacao.POST("/login", authHandler.Login)
			autenticacao.POST("/login/google", authHandler.LoginGoogle)
			autenticacao.POST("/registrar", authHandler.Registrar)
			autenticacao.POST("/recuperar-senha", authHandler.RecuperarSenha)
			autenticacao.GET("/eventos", authHandler.Eventos)

			sessao := autenticacao.Group("", middlewares.SessionAuth(sessaoService))
			{
				sessao.POST("/logout", authHandler.Logout)
				sessao.GET("/me", authHandler.UsuarioAtual)
			}
		}

		protegido := api.Group("", middlewares.SessionAuth(sessaoService))
		{
			protegido.GET("/dashboard", dashboardHandler.Painel)
			protegido.GET("/status", statusHandler.ListarTodos)

			protegido.POST("/itbis", itbiHandler.Criar)
			protegido.GET("/itbis", itbiHandler.ListarTodos)
			protegido.GET("/itbis/:id", itbiHandler.BuscarPorID)
			protegido.GET("/itbis/protocolo/:numero", itbiHandler.BuscarPorProtocolo)
			protegido.GET("/itbis/busca", itbiHandler.BuscarPorStatus)
			protegido.PUT("/itbis/:id", itbiHandler.Atualizar)
			protegido.PATCH("/itbis/:id/status", itbiHandler.AtualizarStatus)
			protegido.DELETE("/itbis/:id", itbiHandler.Excluir)
		}
	}

	r.GET("/health", healthHandler.Health)
	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// registrarValidadores liga as validações customizadas ao binding do Gin.
func registrarValidadores() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("telefone", func(fl validator.FieldLevel) bool {
			_, err := utils.ValidarTelefone(fl.Field().String())
			return err == nil
		})
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

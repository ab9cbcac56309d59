package handlers

import (
	"io"
	"net/http"
	"strings"

	middlewares "github.com/brunodias77/cartorio-app/internal/middleware"
	"github.com/brunodias77/cartorio-app/internal/models"
	"github.com/brunodias77/cartorio-app/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler expõe as operações de sessão sobre o provedor de identidade.
type AuthHandler struct {
	sessao *services.SessaoService
}

// NewAuthHandler cria um novo handler de autenticação
func NewAuthHandler(sessao *services.SessaoService) *AuthHandler {
	return &AuthHandler{sessao: sessao}
}

// gravarCookieSessao grava o cookie usado pelas rotas de página.
func gravarCookieSessao(c *gin.Context, token string, maxAge int) {
	c.SetCookie(middlewares.SessionCookie, token, maxAge, "/", "", false, true)
}

// Login godoc
// @Summary Login com email e senha
// @Description Uma única tentativa; o erro do provedor de identidade é repassado literalmente
// @Tags auth
// @Accept json
// @Produce json
// @Param credenciais body models.LoginRequest true "Credenciais"
// @Success 200 {object} models.RespostaServico[models.LoginResultado]
// @Failure 400 {object} map[string]string
// @Failure 401 {object} models.RespostaServico[models.LoginResultado]
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	resultado := h.sessao.Login(c.Request.Context(), req.Email, req.Senha)
	if !resultado.Success {
		c.JSON(http.StatusUnauthorized, resultado)
		return
	}

	gravarCookieSessao(c, resultado.Data.Token, 0)
	c.JSON(http.StatusOK, resultado)
}

// LoginGoogle godoc
// @Summary Login federado com Google
// @Description Troca o id_token do fluxo OAuth por uma sessão
// @Tags auth
// @Accept json
// @Produce json
// @Param token body models.LoginGoogleRequest true "Token do provedor"
// @Success 200 {object} models.RespostaServico[models.LoginResultado]
// @Failure 400 {object} map[string]string
// @Failure 401 {object} models.RespostaServico[models.LoginResultado]
// @Router /api/v1/auth/login/google [post]
func (h *AuthHandler) LoginGoogle(c *gin.Context) {
	var req models.LoginGoogleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	resultado := h.sessao.LoginComGoogle(c.Request.Context(), req.IDToken)
	if !resultado.Success {
		c.JSON(http.StatusUnauthorized, resultado)
		return
	}

	gravarCookieSessao(c, resultado.Data.Token, 0)
	c.JSON(http.StatusOK, resultado)
}

// Registrar godoc
// @Summary Cadastra um novo usuário
// @Tags auth
// @Accept json
// @Produce json
// @Param dados body models.RegistrarRequest true "Dados de cadastro"
// @Success 201 {object} models.RespostaServico[models.LoginResultado]
// @Failure 400 {object} map[string]string
// @Failure 422 {object} models.RespostaServico[models.LoginResultado]
// @Router /api/v1/auth/registrar [post]
func (h *AuthHandler) Registrar(c *gin.Context) {
	var req models.RegistrarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	resultado := h.sessao.Registrar(c.Request.Context(), req.Email, req.Senha)
	if !resultado.Success {
		c.JSON(http.StatusUnprocessableEntity, resultado)
		return
	}

	gravarCookieSessao(c, resultado.Data.Token, 0)
	c.JSON(http.StatusCreated, resultado)
}

// Logout godoc
// @Summary Encerra a sessão atual
// @Tags auth
// @Produce json
// @Success 200 {object} models.RespostaServico[models.Usuario]
// @Failure 401 {object} models.RespostaServico[models.Usuario]
// @Security BearerAuth
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := ""
	if cookie, err := c.Cookie(middlewares.SessionCookie); err == nil {
		token = cookie
	}
	if auth := c.GetHeader("Authorization"); auth != "" {
		token = strings.TrimPrefix(auth, "Bearer ")
	}

	resultado := h.sessao.Logout(c.Request.Context(), token)
	if !resultado.Success {
		c.JSON(http.StatusUnauthorized, resultado)
		return
	}

	gravarCookieSessao(c, "", -1)
	c.JSON(http.StatusOK, resultado)
}

// RecuperarSenha godoc
// @Summary Dispara o email de redefinição de senha
// @Tags auth
// @Accept json
// @Produce json
// @Param dados body models.RecuperarSenhaRequest true "Email"
// @Success 200 {object} models.RespostaServico[models.Usuario]
// @Failure 400 {object} map[string]string
// @Failure 422 {object} models.RespostaServico[models.Usuario]
// @Router /api/v1/auth/recuperar-senha [post]
func (h *AuthHandler) RecuperarSenha(c *gin.Context) {
	var req models.RecuperarSenhaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	resultado := h.sessao.RecuperarSenha(c.Request.Context(), req.Email)
	if !resultado.Success {
		c.JSON(http.StatusUnprocessableEntity, resultado)
		return
	}
	c.JSON(http.StatusOK, resultado)
}

// UsuarioAtual godoc
// @Summary Usuário da sessão atual
// @Tags auth
// @Produce json
// @Success 200 {object} models.Usuario
// @Security BearerAuth
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) UsuarioAtual(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"uid":   middlewares.GetUserID(c),
		"email": middlewares.GetUserEmail(c),
	})
}

// Eventos godoc
// @Summary Fluxo de eventos de sessão (SSE)
// @Description Entrega o estado de autenticação atual imediatamente e a cada login/logout subsequente, até o cliente desconectar
// @Tags auth
// @Produce text/event-stream
// @Success 200 {string} string "stream"
// @Router /api/v1/auth/eventos [get]
func (h *AuthHandler) Eventos(c *gin.Context) {
	eventos := make(chan *models.Usuario, 1)

	cancelar := h.sessao.Inscrever(func(u *models.Usuario) {
		entregarUltimo(eventos, u)
	})
	defer cancelar()

	c.Stream(func(w io.Writer) bool {
		select {
		case u := <-eventos:
			if u == nil {
				c.SSEvent("sessao", gin.H{"autenticado": false})
			} else {
				c.SSEvent("sessao", gin.H{"autenticado": true, "usuario": u})
			}
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// entregarUltimo publica u no canal sem bloquear: quando o consumidor ainda
// não leu o estado anterior, o anterior é descartado em favor do mais
// recente. O cliente lento perde estados intermediários, nunca o final.
func entregarUltimo(eventos chan *models.Usuario, u *models.Usuario) {
	for {
		select {
		case eventos <- u:
			return
		default:
			select {
			case <-eventos:
			default:
			}
		}
	}
}

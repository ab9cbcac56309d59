package middlewares

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/brunodias77/cartorio-app/internal/services"
	"github.com/gin-gonic/gin"
)

const (
	UserIDKey    = "user_id"
	UserNameKey  = "user_name"
	UserEmailKey = "user_email"

	// SessionCookie é o cookie usado pelas rotas de página (/dashboard).
	SessionCookie = "sessao"
)

// extrairToken busca o token de sessão no header Authorization (Bearer) ou,
// na falta dele, no cookie de sessão.
func extrairToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

// SessionAuth valida o token de sessão e injeta os dados do usuário no
// contexto. Requisições sem sessão válida recebem 401.
func SessionAuth(sessao *services.SessaoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extrairToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token não fornecido"})
			c.Abort()
			return
		}

		usuario, err := sessao.ValidarToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Sessão inválida: " + err.Error()})
			c.Abort()
			return
		}

		c.Set(UserIDKey, usuario.UID)
		c.Set(UserNameKey, usuario.Nome)
		c.Set(UserEmailKey, usuario.Email)

		c.Next()
	}
}

// RequireSessionOrRedirect protege rotas de página: sem sessão válida,
// redireciona para /login preservando o destino pretendido.
func RequireSessionOrRedirect(sessao *services.SessaoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extrairToken(c)
		if token != "" {
			if usuario, err := sessao.ValidarToken(token); err == nil {
				c.Set(UserIDKey, usuario.UID)
				c.Set(UserNameKey, usuario.Nome)
				c.Set(UserEmailKey, usuario.Email)
				c.Next()
				return
			}
		}

		destino := url.QueryEscape(c.Request.URL.RequestURI())
		c.Redirect(http.StatusFound, "/login?redirect="+destino)
		c.Abort()
	}
}

// GetUserID retorna o ID do usuário autenticado, ou "" quando ausente.
func GetUserID(c *gin.Context) string {
	if v, exists := c.Get(UserIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// GetUserEmail retorna o email do usuário autenticado, ou "" quando ausente.
func GetUserEmail(c *gin.Context) string {
	if v, exists := c.Get(UserEmailKey); exists {
		if email, ok := v.(string); ok {
			return email
		}
	}
	return ""
}

package models

// Usuario é a visão da aplicação sobre a identidade autenticada. Os campos de
// identidade pertencem ao provedor externo e nunca são alterados aqui.
type Usuario struct {
	UID   string `json:"uid"`
	Nome  string `json:"displayName,omitempty"`
	Email string `json:"email"`
}

// LoginResultado é o retorno de um login bem-sucedido: o token de sessão e
// o usuário autenticado.
type LoginResultado struct {
	Token   string   `json:"token"`
	Usuario *Usuario `json:"usuario"`
}

// LoginRequest é o corpo do login com email e senha.
// @Description Credenciais de acesso
type LoginRequest struct {
	Email string `json:"email" binding:"required,email" example:"tabeliao@cartorio.com.br"`
	Senha string `json:"senha" binding:"required" example:"segredo123"`
}

// LoginGoogleRequest carrega o id_token obtido no fluxo OAuth do Google.
// @Description Token do provedor federado
type LoginGoogleRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// RegistrarRequest é o corpo do cadastro de um novo usuário.
// @Description Dados de cadastro de usuário
type RegistrarRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required,min=6"`
}

// RecuperarSenhaRequest dispara o email de redefinição de senha.
// @Description Email para recuperação de senha
type RecuperarSenhaRequest struct {
	Email string `json:"email" binding:"required,email"`
}

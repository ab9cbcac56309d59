package ports

import "context"

// Identidade é o resultado de uma autenticação bem-sucedida no provedor.
type Identidade struct {
	UID   string
	Email string
	Nome  string
}

// ProvedorIdentidade é o contrato com o serviço de autenticação hospedado.
// Cada operação é uma única tentativa; erros do provedor são repassados
// literalmente ao chamador, sem retry.
type ProvedorIdentidade interface {
	EntrarComSenha(ctx context.Context, email, senha string) (*Identidade, error)
	EntrarComGoogle(ctx context.Context, idToken string) (*Identidade, error)
	CriarUsuario(ctx context.Context, email, senha string) (*Identidade, error)
	EnviarEmailRecuperacao(ctx context.Context, email string) error
}

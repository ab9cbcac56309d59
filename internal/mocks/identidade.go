package mocks

import (
	"context"
	"errors"

	"github.com/brunodias77/cartorio-app/internal/ports"
)

// MockProvedorIdentidade implementa ports.ProvedorIdentidade para os testes.
type MockProvedorIdentidade struct {
	EntrarComSenhaFunc         func(ctx context.Context, email, senha string) (*ports.Identidade, error)
	EntrarComGoogleFunc        func(ctx context.Context, idToken string) (*ports.Identidade, error)
	CriarUsuarioFunc           func(ctx context.Context, email, senha string) (*ports.Identidade, error)
	EnviarEmailRecuperacaoFunc func(ctx context.Context, email string) error
}

var _ ports.ProvedorIdentidade = (*MockProvedorIdentidade)(nil)

func (m *MockProvedorIdentidade) EntrarComSenha(ctx context.Context, email, senha string) (*ports.Identidade, error) {
	if m.EntrarComSenhaFunc != nil {
		return m.EntrarComSenhaFunc(ctx, email, senha)
	}
	return nil, errors.New("EMAIL_NOT_FOUND")
}

func (m *MockProvedorIdentidade) EntrarComGoogle(ctx context.Context, idToken string) (*ports.Identidade, error) {
	if m.EntrarComGoogleFunc != nil {
		return m.EntrarComGoogleFunc(ctx, idToken)
	}
	return nil, errors.New("INVALID_IDP_RESPONSE")
}

func (m *MockProvedorIdentidade) CriarUsuario(ctx context.Context, email, senha string) (*ports.Identidade, error) {
	if m.CriarUsuarioFunc != nil {
		return m.CriarUsuarioFunc(ctx, email, senha)
	}
	return nil, errors.New("EMAIL_EXISTS")
}

func (m *MockProvedorIdentidade) EnviarEmailRecuperacao(ctx context.Context, email string) error {
	if m.EnviarEmailRecuperacaoFunc != nil {
		return m.EnviarEmailRecuperacaoFunc(ctx, email)
	}
	return nil
}

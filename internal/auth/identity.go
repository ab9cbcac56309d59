// Package auth implementa o cliente REST do provedor de identidade hospedado
// (Identity Toolkit). Cada operação é uma única chamada; o erro do provedor é
// repassado literalmente, sem retry.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/brunodias77/cartorio-app/internal/config"
	"github.com/brunodias77/cartorio-app/internal/ports"
)

// IdentityClient fala com a API REST do provedor de identidade.
type IdentityClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewIdentityClient cria o cliente a partir da configuração.
func NewIdentityClient(cfg *config.Config) *IdentityClient {
	return &IdentityClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    cfg.IdentityBaseURL,
		apiKey:     cfg.IdentityAPIKey,
	}
}

var _ ports.ProvedorIdentidade = (*IdentityClient)(nil)

type identityResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	FullName    string `json:"fullName"`
}

type identityError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// EntrarComSenha autentica com email e senha.
func (c *IdentityClient) EntrarComSenha(ctx context.Context, email, senha string) (*ports.Identidade, error) {
	body := map[string]interface{}{
		"email":             email,
		"password":          senha,
		"returnSecureToken": true,
	}
	return c.autenticar(ctx, "accounts:signInWithPassword", body)
}

// EntrarComGoogle troca o id_token do fluxo OAuth do Google por uma
// identidade do provedor.
func (c *IdentityClient) EntrarComGoogle(ctx context.Context, idToken string) (*ports.Identidade, error) {
	body := map[string]interface{}{
		"postBody":          fmt.Sprintf("id_token=%s&providerId=google.com", idToken),
		"requestUri":        "http://localhost",
		"returnSecureToken": true,
	}
	return c.autenticar(ctx, "accounts:signInWithIdp", body)
}

// CriarUsuario registra um novo usuário com email e senha.
func (c *IdentityClient) CriarUsuario(ctx context.Context, email, senha string) (*ports.Identidade, error) {
	body := map[string]interface{}{
		"email":             email,
		"password":          senha,
		"returnSecureToken": true,
	}
	return c.autenticar(ctx, "accounts:signUp", body)
}

// EnviarEmailRecuperacao dispara o email de redefinição de senha.
func (c *IdentityClient) EnviarEmailRecuperacao(ctx context.Context, email string) error {
	body := map[string]interface{}{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}
	_, err := c.chamar(ctx, "accounts:sendOobCode", body)
	return err
}

func (c *IdentityClient) autenticar(ctx context.Context, operacao string, body map[string]interface{}) (*ports.Identidade, error) {
	raw, err := c.chamar(ctx, operacao, body)
	if err != nil {
		return nil, err
	}

	var resp identityResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("resposta inesperada do provedor de identidade: %v", err)
	}

	nome := resp.DisplayName
	if nome == "" {
		nome = resp.FullName
	}

	return &ports.Identidade{
		UID:   resp.LocalID,
		Email: resp.Email,
		Nome:  nome,
	}, nil
}

func (c *IdentityClient) chamar(ctx context.Context, operacao string, body map[string]interface{}) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s?key=%s", c.baseURL, operacao, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		// Mensagem do provedor repassada literalmente (ex: INVALID_PASSWORD,
		// EMAIL_NOT_FOUND), como o restante da aplicação espera.
		var provErr identityError
		if err := json.Unmarshal(raw, &provErr); err == nil && provErr.Error.Message != "" {
			return nil, errors.New(provErr.Error.Message)
		}
		return nil, fmt.Errorf("provedor de identidade retornou status %d", resp.StatusCode)
	}

	return raw, nil
}

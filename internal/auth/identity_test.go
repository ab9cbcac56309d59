package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func clienteDeTeste(servidor *httptest.Server) *IdentityClient {
	return &IdentityClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    servidor.URL,
		apiKey:     "chave-de-teste",
	}
}

func TestEntrarComSenha(t *testing.T) {
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/accounts:signInWithPassword") {
			t.Errorf("path = %q; expected accounts:signInWithPassword", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "chave-de-teste" {
			t.Errorf("key = %q; expected chave-de-teste", r.URL.Query().Get("key"))
		}

		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "maria@cartorio.app" || body["password"] != "senha123" {
			t.Errorf("corpo inesperado: %v", body)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"localId":     "uid-1",
			"email":       "maria@cartorio.app",
			"displayName": "Maria",
		})
	}))
	defer servidor.Close()

	identidade, err := clienteDeTeste(servidor).EntrarComSenha(context.Background(), "maria@cartorio.app", "senha123")
	if err != nil {
		t.Fatalf("EntrarComSenha falhou: %v", err)
	}
	if identidade.UID != "uid-1" || identidade.Email != "maria@cartorio.app" || identidade.Nome != "Maria" {
		t.Errorf("identidade = %+v", identidade)
	}
}

func TestEntrarComSenhaRecusado(t *testing.T) {
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"code": 400, "message": "INVALID_PASSWORD"},
		})
	}))
	defer servidor.Close()

	_, err := clienteDeTeste(servidor).EntrarComSenha(context.Background(), "maria@cartorio.app", "errada")
	if err == nil {
		t.Fatal("EntrarComSenha deveria falhar")
	}
	if err.Error() != "INVALID_PASSWORD" {
		t.Errorf("err = %q; a mensagem do provedor deveria ser repassada literalmente", err.Error())
	}
}

func TestEntrarComGoogle(t *testing.T) {
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/accounts:signInWithIdp") {
			t.Errorf("path = %q; expected accounts:signInWithIdp", r.URL.Path)
		}

		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		postBody, _ := body["postBody"].(string)
		if !strings.Contains(postBody, "id_token=token-google") || !strings.Contains(postBody, "providerId=google.com") {
			t.Errorf("postBody = %q", postBody)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"localId":  "uid-g",
			"email":    "g@cartorio.app",
			"fullName": "Conta Google",
		})
	}))
	defer servidor.Close()

	identidade, err := clienteDeTeste(servidor).EntrarComGoogle(context.Background(), "token-google")
	if err != nil {
		t.Fatalf("EntrarComGoogle falhou: %v", err)
	}
	// Sem displayName, o fullName do provedor federado é usado.
	if identidade.Nome != "Conta Google" {
		t.Errorf("Nome = %q; expected Conta Google", identidade.Nome)
	}
}

func TestCriarUsuario(t *testing.T) {
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/accounts:signUp") {
			t.Errorf("path = %q; expected accounts:signUp", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"localId": "uid-novo",
			"email":   "novo@cartorio.app",
		})
	}))
	defer servidor.Close()

	identidade, err := clienteDeTeste(servidor).CriarUsuario(context.Background(), "novo@cartorio.app", "senha123")
	if err != nil {
		t.Fatalf("CriarUsuario falhou: %v", err)
	}
	if identidade.UID != "uid-novo" {
		t.Errorf("UID = %q", identidade.UID)
	}
}

func TestEnviarEmailRecuperacao(t *testing.T) {
	var recebido map[string]interface{}
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/accounts:sendOobCode") {
			t.Errorf("path = %q; expected accounts:sendOobCode", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&recebido)
		json.NewEncoder(w).Encode(map[string]interface{}{"email": "maria@cartorio.app"})
	}))
	defer servidor.Close()

	if err := clienteDeTeste(servidor).EnviarEmailRecuperacao(context.Background(), "maria@cartorio.app"); err != nil {
		t.Fatalf("EnviarEmailRecuperacao falhou: %v", err)
	}
	if recebido["requestType"] != "PASSWORD_RESET" {
		t.Errorf("requestType = %v; expected PASSWORD_RESET", recebido["requestType"])
	}
}

func TestErroSemCorpoJSON(t *testing.T) {
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("erro interno"))
	}))
	defer servidor.Close()

	_, err := clienteDeTeste(servidor).EntrarComSenha(context.Background(), "a@b.c", "x")
	if err == nil || !strings.Contains(err.Error(), "500") {
		t.Errorf("err = %v; expected mensagem com o status 500", err)
	}
}

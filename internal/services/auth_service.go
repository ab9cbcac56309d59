package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/brunodias77/cartorio-app/internal/models"
	"github.com/brunodias77/cartorio-app/internal/ports"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessaoClaims são os claims do token de sessão emitido após o provedor de
// identidade aceitar a credencial.
type SessaoClaims struct {
	jwt.RegisteredClaims
	Nome  string `json:"nome,omitempty"`
	Email string `json:"email"`
}

// SessaoService é o provedor de sessão: embrulha o provedor de identidade
// hospedado, emite tokens de sessão e mantém o estado observável de
// "usuário atual" com notificação por inscrição (entrega imediata na
// inscrição e a cada login/logout subsequente).
type SessaoService struct {
	provedor ports.ProvedorIdentidade
	secret   string
	duracao  time.Duration
	log      *zap.Logger

	mu              sync.Mutex
	sessoes         map[string]*models.Usuario
	atual           *models.Usuario
	inscritos       map[int]func(*models.Usuario)
	proximoInscrito int
}

// NewSessaoService cria o provedor de sessão.
func NewSessaoService(provedor ports.ProvedorIdentidade, secret string, duracao time.Duration, log *zap.Logger) *SessaoService {
	return &SessaoService{
		provedor:  provedor,
		secret:    secret,
		duracao:   duracao,
		log:       log,
		sessoes:   make(map[string]*models.Usuario),
		inscritos: make(map[int]func(*models.Usuario)),
	}
}

// UsuarioAtual retorna síncronamente o último estado conhecido da sessão,
// ou nil quando não há usuário autenticado.
func (s *SessaoService) UsuarioAtual() *models.Usuario {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.atual
}

// Login autentica com email e senha no provedor de identidade. Uma única
// tentativa; qualquer falha do provedor é repassada literalmente.
func (s *SessaoService) Login(ctx context.Context, email, senha string) *models.RespostaServico[*models.LoginResultado] {
	identidade, err := s.provedor.EntrarComSenha(ctx, email, senha)
	if err != nil {
		s.log.Warn("login recusado", zap.String("email", email), zap.Error(err))
		return models.RespostaErro[*models.LoginResultado](err.Error())
	}

	return s.abrirSessao(identidade)
}

// LoginComGoogle autentica com o id_token do fluxo OAuth do Google.
func (s *SessaoService) LoginComGoogle(ctx context.Context, idToken string) *models.RespostaServico[*models.LoginResultado] {
	identidade, err := s.provedor.EntrarComGoogle(ctx, idToken)
	if err != nil {
		s.log.Warn("login federado recusado", zap.Error(err))
		return models.RespostaErro[*models.LoginResultado](err.Error())
	}

	return s.abrirSessao(identidade)
}

// Registrar cria um novo usuário no provedor e abre a sessão.
func (s *SessaoService) Registrar(ctx context.Context, email, senha string) *models.RespostaServico[*models.LoginResultado] {
	identidade, err := s.provedor.CriarUsuario(ctx, email, senha)
	if err != nil {
		s.log.Warn("cadastro recusado", zap.String("email", email), zap.Error(err))
		return models.RespostaErro[*models.LoginResultado](err.Error())
	}

	return s.abrirSessao(identidade)
}

// RecuperarSenha dispara o email de redefinição de senha do provedor.
func (s *SessaoService) RecuperarSenha(ctx context.Context, email string) *models.RespostaServico[*models.Usuario] {
	if err := s.provedor.EnviarEmailRecuperacao(ctx, email); err != nil {
		return models.RespostaErro[*models.Usuario](err.Error())
	}
	return models.RespostaOK[*models.Usuario](nil)
}

// Logout encerra a sessão do token informado e notifica os inscritos.
func (s *SessaoService) Logout(ctx context.Context, token string) *models.RespostaServico[*models.Usuario] {
	claims, err := s.decodificar(token)
	if err != nil {
		return models.RespostaErro[*models.Usuario](err.Error())
	}

	s.mu.Lock()
	delete(s.sessoes, claims.ID)
	s.atual = nil
	s.mu.Unlock()

	s.notificar()
	return models.RespostaOK[*models.Usuario](nil)
}

// ValidarToken valida o token de sessão e retorna o usuário, ou erro quando
// o token é inválido, expirado ou a sessão foi encerrada por logout.
func (s *SessaoService) ValidarToken(token string) (*models.Usuario, error) {
	claims, err := s.decodificar(token)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	usuario, ok := s.sessoes[claims.ID]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("sessão encerrada")
	}

	return usuario, nil
}

// Inscrever registra um observador do estado de sessão. O valor atual é
// entregue imediatamente; depois, a cada login/logout. A função retornada
// cancela a entrega e deve ser chamada exatamente uma vez pelo chamador.
func (s *SessaoService) Inscrever(fn func(*models.Usuario)) (cancelar func()) {
	s.mu.Lock()
	id := s.proximoInscrito
	s.proximoInscrito++
	s.inscritos[id] = fn
	atual := s.atual
	s.mu.Unlock()

	// Entrega inicial fora do lock: o callback pode inscrever/cancelar.
	fn(atual)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.inscritos, id)
			s.mu.Unlock()
		})
	}
}

func (s *SessaoService) abrirSessao(identidade *ports.Identidade) *models.RespostaServico[*models.LoginResultado] {
	usuario := &models.Usuario{
		UID:   identidade.UID,
		Nome:  identidade.Nome,
		Email: identidade.Email,
	}

	token, err := s.emitirToken(usuario)
	if err != nil {
		s.log.Error("falha ao emitir token de sessão", zap.String("uid", usuario.UID), zap.Error(err))
		return models.RespostaErro[*models.LoginResultado](err.Error())
	}

	s.log.Info("sessão aberta", zap.String("uid", usuario.UID), zap.String("email", usuario.Email))

	s.notificar()
	resultado := &models.LoginResultado{Token: token, Usuario: usuario}
	return models.RespostaOK(resultado)
}

func (s *SessaoService) emitirToken(usuario *models.Usuario) (string, error) {
	jti := uuid.New().String()
	now := time.Now()

	claims := SessaoClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   usuario.UID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duracao)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        jti,
		},
		Nome:  usuario.Nome,
		Email: usuario.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	assinado, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("falha ao assinar token de sessão: %w", err)
	}

	s.mu.Lock()
	s.sessoes[jti] = usuario
	s.atual = usuario
	s.mu.Unlock()

	return assinado, nil
}

func (s *SessaoService) decodificar(tokenString string) (*SessaoClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessaoClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessaoClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("token de sessão inválido")
	}

	return claims, nil
}

// notificar entrega o estado atual a todos os inscritos, fora do lock.
func (s *SessaoService) notificar() {
	s.mu.Lock()
	atual := s.atual
	fns := make([]func(*models.Usuario), 0, len(s.inscritos))
	for _, fn := range s.inscritos {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(atual)
	}
}

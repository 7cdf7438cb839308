package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const emissorSessao = "atelie-inteligente"

// Sessoes emite e valida os tokens de sessão (JWT HS256).
// O token só carrega a identidade; papel e plano são lidos do banco a cada requisição.
type Sessoes struct {
	segredo []byte
	ttl     time.Duration
	agora   func() time.Time
}

func NewSessoes(segredo string, ttl time.Duration) *Sessoes {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Sessoes{
		segredo: []byte(segredo),
		ttl:     ttl,
		agora:   time.Now,
	}
}

// Emitir gera um token para o usuário e devolve também a expiração.
func (s *Sessoes) Emitir(userID string) (string, time.Time, error) {
	agora := s.agora()
	expira := agora.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    emissorSessao,
		IssuedAt:  jwt.NewNumericDate(agora),
		ExpiresAt: jwt.NewNumericDate(expira),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.segredo)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("assinando token de sessão: %w", err)
	}
	return token, expira, nil
}

// Validar confere assinatura, emissor e expiração e devolve o ID do usuário.
func (s *Sessoes) Validar(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return s.segredo, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(emissorSessao),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.agora),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: expirado", ErrSessaoInvalida)
		}
		return "", ErrSessaoInvalida
	}
	if claims.Subject == "" {
		return "", ErrSessaoInvalida
	}
	return claims.Subject, nil
}

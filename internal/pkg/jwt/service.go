package jwt

import (
	"errors"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const DefaultTokenTTL = 3 * time.Hour

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

type Claims struct {
	Email string `json:"email"`

	jwtlib.RegisteredClaims
}

// Service issues and verifies the stateless bearer tokens gating every
// stage transition except registration and login.
type Service interface {
	Issue(email string) (string, error)
	Verify(tokenString string) (string, error)
}

type HMACService struct {
	secret []byte
	ttl    time.Duration

	now func() time.Time
}

func NewHMACService(secret string, ttl time.Duration) *HMACService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &HMACService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs an HS256 token with the lowercased email as subject.
func (s *HMACService) Issue(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", ErrTokenInvalid
	}
	if len(s.secret) == 0 {
		return "", ErrTokenInvalid
	}

	now := s.now().UTC()
	c := Claims{
		Email: email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return t.SignedString(s.secret)
}

// Verify validates the token and returns the email it was issued for.
func (s *HMACService) Verify(tokenString string) (string, error) {
	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(func() time.Time { return s.now() }),
	)

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return "", ErrTokenInvalid
	}

	email := strings.TrimSpace(c.Email)
	if email == "" {
		email = strings.TrimSpace(c.Subject)
	}
	if email == "" {
		return "", ErrTokenInvalid
	}
	return strings.ToLower(email), nil
}

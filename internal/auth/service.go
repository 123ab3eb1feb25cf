package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/artesyoficios/studio/internal/config"
	"github.com/artesyoficios/studio/internal/db/controller/setting"
	"github.com/artesyoficios/studio/internal/site"
)

// DefaultTokenTTL is used when the configuration sets no lifetime.
const DefaultTokenTTL = 12 * time.Hour

const (
	issuer  = "studio"
	subject = "admin"
)

// Service checks admin pins and issues and verifies admin tokens.
type Service struct {
	db      *gorm.DB
	gateMu  sync.Mutex
	gate    *site.AdminGate
	enforce bool
	secret  []byte
	ttl     time.Duration
	now     func() time.Time
}

// NewService creates a new auth service.
func NewService(db *gorm.DB, cfg config.Admin) *Service {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &Service{
		db:      db,
		gate:    site.NewAdminGate(cfg.MasterPIN, cfg.DefaultPIN, ""),
		enforce: cfg.EnforceToken,
		secret:  []byte(cfg.TokenSecret),
		ttl:     ttl,
		now:     time.Now,
	}
}

// refreshGate loads the currently stored admin pin into the gate.
func (s *Service) refreshGate(ctx context.Context) (*site.AdminGate, error) {
	stored, err := setting.Get(s.db.WithContext(ctx), setting.KeyAdminPIN)
	if err != nil {
		return nil, fmt.Errorf("failed to read admin pin: %w", err)
	}

	s.gate.SetStored(stored)

	return s.gate, nil
}

// Unlock checks pin and returns a signed admin token. Without a signing secret
// and with tokens not enforced the token is empty.
func (s *Service) Unlock(ctx context.Context, pin string) (string, error) {
	// refresh and check together so a concurrent refresh cannot swap the pin
	s.gateMu.Lock()
	gate, err := s.refreshGate(ctx)
	if err != nil {
		s.gateMu.Unlock()
		return "", err
	}

	ok := gate.Unlock(pin)
	s.gateMu.Unlock()

	if !ok {
		return "", ErrInvalidPIN
	}

	if len(s.secret) == 0 && !s.enforce {
		return "", nil
	}

	return s.Issue()
}

// Issue signs a new admin token.
func (s *Service) Issue() (string, error) {
	if len(s.secret) == 0 {
		return "", ErrNoSecret
	}

	now := s.now().UTC()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses raw and checks signature, issuer and expiry.
func (s *Service) Verify(raw string) (*jwt.RegisteredClaims, error) {
	if len(s.secret) == 0 {
		return nil, ErrNoSecret
	}

	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithSubject(subject),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"firebase.google.com/go/auth"
	"github.com/MKhiriev/go-sub-keeper/internal/config"
	"github.com/MKhiriev/go-sub-keeper/internal/utils"
)

// IDTokenVerifier is the part of *auth.Client used in firebase mode.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// NewIdentityService picks the verifier for cfg.Firebase.IdentityMode.
func NewIdentityService(cfg config.StructuredConfig, verifier IDTokenVerifier) (IdentityService, error) {
	switch cfg.Firebase.IdentityMode {
	case "", config.IdentityModeJWT:
		return &jwtIdentityService{
			signKey: cfg.App.TokenSignKey,
			issuer:  cfg.App.TokenIssuer,
		}, nil
	case config.IdentityModeFirebase:
		if verifier == nil {
			return nil, ErrNoIDTokenVerifier
		}
		return &firebaseIdentityService{verifier: verifier}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIdentityMode, cfg.Firebase.IdentityMode)
	}
}

// jwtIdentityService accepts HS256 tokens whose subject is the user id.
type jwtIdentityService struct {
	signKey string
	issuer  string
}

func (s *jwtIdentityService) VerifyIDToken(ctx context.Context, rawToken string) (string, error) {
	token, err := utils.ValidateAndParseJWTToken(strings.TrimSpace(rawToken), s.signKey, s.issuer)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidIDToken, err)
	}
	return token.UserID, nil
}

// firebaseIdentityService accepts Firebase ID tokens; the uid is the user id.
type firebaseIdentityService struct {
	verifier IDTokenVerifier
}

func (s *firebaseIdentityService) VerifyIDToken(ctx context.Context, rawToken string) (string, error) {
	token, err := s.verifier.VerifyIDToken(ctx, strings.TrimSpace(rawToken))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidIDToken, err)
	}
	if token == nil || token.UID == "" {
		return "", ErrInvalidIDToken
	}
	return token.UID, nil
}

const (
	defaultTokenIssuer   = "go-sub-keeper"
	defaultTokenDuration = 24 * time.Hour
)

// TokenIssuer mints the HS256 identity tokens accepted in jwt mode.
type TokenIssuer struct {
	signKey  string
	issuer   string
	duration time.Duration
}

// NewTokenIssuer reads the signing parameters from cfg. An empty issuer or
// non-positive duration falls back to a default.
func NewTokenIssuer(cfg config.App) (*TokenIssuer, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrNoTokenSignKey
	}

	issuer := cfg.TokenIssuer
	if issuer == "" {
		issuer = defaultTokenIssuer
	}
	duration := cfg.TokenDuration
	if duration <= 0 {
		duration = defaultTokenDuration
	}

	return &TokenIssuer{signKey: cfg.TokenSignKey, issuer: issuer, duration: duration}, nil
}

// Issue returns a signed token whose subject is userID.
func (i *TokenIssuer) Issue(userID string) (string, error) {
	token, err := utils.GenerateJWTToken(i.issuer, strings.TrimSpace(userID), i.duration, i.signKey)
	if err != nil {
		return "", fmt.Errorf("issue token for %q: %w", userID, err)
	}
	return token.SignedString, nil
}

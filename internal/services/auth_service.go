package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	apierrors "github.com/SirClappington/ecommerce-admin-backend/internal/errors"
	"github.com/SirClappington/ecommerce-admin-backend/internal/models"
)

// TokenVerifier checks Google-issued credentials. Implementations exist for
// Firebase Auth and for raw Google ID tokens.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*models.Identity, error)
	SessionCookie(ctx context.Context, idToken string, ttl time.Duration) (string, error)
	VerifySessionCookie(ctx context.Context, cookie string) (*models.Identity, error)
}

// AuthService restricts access to the configured admin allow-list.
type AuthService struct {
	verifier   TokenVerifier
	admins     map[string]struct{}
	sessionTTL time.Duration
	logger     *zap.Logger
}

func NewAuthService(verifier TokenVerifier, adminEmails []string, sessionTTL time.Duration, logger *zap.Logger) *AuthService {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		if email = normalizeEmail(email); email != "" {
			admins[email] = struct{}{}
		}
	}
	return &AuthService{
		verifier:   verifier,
		admins:     admins,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

func (s *AuthService) IsAdmin(email string) bool {
	_, ok := s.admins[normalizeEmail(email)]
	return ok
}

// Authenticate verifies cred and requires the identity to be an admin.
// A bearer token takes precedence over a session cookie.
func (s *AuthService) Authenticate(ctx context.Context, cred models.Credential) (*models.Identity, error) {
	if cred.Empty() {
		return nil, apierrors.NewUnauthorizedError("missing credentials")
	}

	var (
		identity *models.Identity
		err      error
	)
	if cred.Bearer != "" {
		identity, err = s.verifier.VerifyIDToken(ctx, cred.Bearer)
	} else {
		identity, err = s.verifier.VerifySessionCookie(ctx, cred.Session)
	}
	if err != nil {
		s.logger.Debug("credential rejected", zap.Error(err))
		return nil, apierrors.NewUnauthorizedError("invalid credentials")
	}
	return s.requireAdmin(identity)
}

// CreateSession exchanges an admin's ID token for a session cookie value.
func (s *AuthService) CreateSession(ctx context.Context, idToken string) (string, *models.Identity, error) {
	if idToken == "" {
		return "", nil, apierrors.NewValidationError("idToken is required")
	}

	identity, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		s.logger.Debug("id token rejected", zap.Error(err))
		return "", nil, apierrors.NewUnauthorizedError("invalid credentials")
	}
	if _, err := s.requireAdmin(identity); err != nil {
		return "", nil, err
	}

	cookie, err := s.verifier.SessionCookie(ctx, idToken, s.sessionTTL)
	if err != nil {
		return "", nil, apierrors.NewExternalError("auth", err)
	}

	s.logger.Info("admin session created", zap.String("email", identity.Email))
	return cookie, identity, nil
}

func (s *AuthService) requireAdmin(identity *models.Identity) (*models.Identity, error) {
	if identity == nil || !s.IsAdmin(identity.Email) {
		email := ""
		if identity != nil {
			email = identity.Email
		}
		s.logger.Warn("non-admin access denied", zap.String("email", email))
		return nil, apierrors.NewUnauthorizedError("You are not an admin")
	}
	return identity, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

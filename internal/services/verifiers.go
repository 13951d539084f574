package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"firebase.google.com/go/auth"
	"google.golang.org/api/idtoken"

	"github.com/SirClappington/ecommerce-admin-backend/internal/models"
)

var (
	errNoEmail         = errors.New("token carries no email claim")
	errEmailUnverified = errors.New("token email is not verified")
)

// FirebaseVerifier checks Firebase Auth ID tokens and session cookies. Users
// sign in with the Google provider on the client.
type FirebaseVerifier struct {
	client *auth.Client
}

func NewFirebaseVerifier(client *auth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

func (v *FirebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*models.Identity, error) {
	tok, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("error verifying id token: %w", err)
	}
	return identityFromClaims(tok.UID, tok.Claims)
}

func (v *FirebaseVerifier) SessionCookie(ctx context.Context, idToken string, ttl time.Duration) (string, error) {
	cookie, err := v.client.SessionCookie(ctx, idToken, ttl)
	if err != nil {
		return "", fmt.Errorf("error creating session cookie: %w", err)
	}
	return cookie, nil
}

func (v *FirebaseVerifier) VerifySessionCookie(ctx context.Context, cookie string) (*models.Identity, error) {
	tok, err := v.client.VerifySessionCookie(ctx, cookie)
	if err != nil {
		return nil, fmt.Errorf("error verifying session cookie: %w", err)
	}
	return identityFromClaims(tok.UID, tok.Claims)
}

// GoogleVerifier validates Google Sign-In ID tokens for one OAuth client.
// Google issues no session cookies, so the session is the ID token itself
// and lasts as long as the token does.
type GoogleVerifier struct {
	audience string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{audience: clientID}
}

func (v *GoogleVerifier) VerifyIDToken(ctx context.Context, idToken string) (*models.Identity, error) {
	payload, err := idtoken.Validate(ctx, idToken, v.audience)
	if err != nil {
		return nil, fmt.Errorf("error validating google id token: %w", err)
	}
	return identityFromClaims(payload.Subject, payload.Claims)
}

func (v *GoogleVerifier) SessionCookie(ctx context.Context, idToken string, ttl time.Duration) (string, error) {
	return idToken, nil
}

func (v *GoogleVerifier) VerifySessionCookie(ctx context.Context, cookie string) (*models.Identity, error) {
	return v.VerifyIDToken(ctx, cookie)
}

func identityFromClaims(uid string, claims map[string]interface{}) (*models.Identity, error) {
	email, _ := claims["email"].(string)
	if email == "" {
		return nil, errNoEmail
	}
	if verified, ok := claims["email_verified"].(bool); ok && !verified {
		return nil, errEmailUnverified
	}
	name, _ := claims["name"].(string)
	return &models.Identity{UID: uid, Email: email, Name: name}, nil
}

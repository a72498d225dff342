package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleOAuth holds the OAuth2 exchange config plus the OIDC verifier used
// for ID-token logins.
type GoogleOAuth struct {
	Config   *oauth2.Config
	Verifier *oidc.IDTokenVerifier
}

// InitGoogleOAuth configures Google sign-in. Returns nil (not an error)
// when the client credentials are absent so password-only deployments keep
// working.
func InitGoogleOAuth(ctx context.Context) (*GoogleOAuth, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	redirectURL := os.Getenv("GOOGLE_REDIRECT_URL")

	if clientID == "" || clientSecret == "" {
		log.Println("⚠️  Google OAuth disabled (GOOGLE_CLIENT_ID / GOOGLE_CLIENT_SECRET not set)")
		return nil, nil
	}

	if redirectURL == "" {
		redirectURL = "http://localhost:8000/auth/google/callback"
		log.Printf("⚠️  GOOGLE_REDIRECT_URL not set, using default: %s", redirectURL)
	}

	cfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	provider, err := oidc.NewProvider(ctx, "https://accounts.google.com")
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	log.Println("✅ Google OAuth initialized")
	return &GoogleOAuth{
		Config:   cfg,
		Verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
	}, nil
}

// GetFrontendURL returns frontend URL from environment
func GetFrontendURL() string {
	if url := os.Getenv("FRONTEND_URL"); url != "" {
		return url
	}
	return "http://localhost:3000"
}

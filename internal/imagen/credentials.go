package imagen

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// googleTokenProvider adapts an oauth2.TokenSource; the source refreshes
// expired tokens on its own before each call.
type googleTokenProvider struct {
	source oauth2.TokenSource
}

func (p *googleTokenProvider) Token(ctx context.Context) (string, error) {
	tok, err := p.source.Token()
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

// NewTokenProvider resolves Google Cloud credentials: an explicit service
// account file when credentialsPath is set, otherwise Application Default
// Credentials. Callers treat an error as "no credentials mode" rather
// than a fatal fault.
func NewTokenProvider(ctx context.Context, credentialsPath string) (TokenProvider, error) {
	if credentialsPath != "" {
		data, err := os.ReadFile(credentialsPath)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, cloudPlatformScope)
		if err != nil {
			return nil, fmt.Errorf("parse credentials file: %w", err)
		}
		return &googleTokenProvider{source: creds.TokenSource}, nil
	}

	source, err := google.DefaultTokenSource(ctx, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("application default credentials: %w", err)
	}
	return &googleTokenProvider{source: source}, nil
}

// StaticTokenProvider returns a fixed token. Intended for tests.
type StaticTokenProvider string

func (p StaticTokenProvider) Token(ctx context.Context) (string, error) {
	return string(p), nil
}

package client

import (
	"context"

	"github.com/dmitrijs2005/calamaunido/internal/client/models"
)

// Client is the transport-agnostic contract of the CalamaUnido REST API.
type Client interface {
	ObtainToken(ctx context.Context, creds models.Credentials) (*models.TokenResponse, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Publications(ctx context.Context, q PublicationsQuery) (*models.Page, error)
	EvidenceURL(archivo string) string
	DownloadEvidence(ctx context.Context, archivo, dest string) error
}

// TokenSource supplies the bearer token for authenticated calls. An empty
// token is sent as is; the server decides what to do with it.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenSourceFunc adapts a function to TokenSource.
type TokenSourceFunc func(ctx context.Context) (string, error)

func (f TokenSourceFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

package app

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"tripvote/internal/domain"
)

// VoterService issues the opaque voter id used by votes. How a client
// proves it holds a key is outside vote and comment logic.
type VoterService struct {
	tokens domain.VoterTokens
}

func NewVoterService(t domain.VoterTokens) *VoterService { return &VoterService{tokens: t} }

// NewClientKey returns a fresh random key for a client that has none.
func (s *VoterService) NewClientKey() string { return uuid.NewString() }

// Resolve returns the voter id bound to clientKey, creating it on first use.
func (s *VoterService) Resolve(ctx context.Context, clientKey string) (string, error) {
	if strings.TrimSpace(clientKey) == "" {
		return "", domain.Invalid("Client key is required.")
	}
	return s.tokens.GetOrCreate(ctx, clientKey, uuid.NewString())
}

package app_test

import (
	"context"
	"errors"
	"testing"

	"tripvote/internal/app"
	"tripvote/internal/domain"
)

type memTokens map[string]string

func (m memTokens) GetOrCreate(ctx context.Context, key, candidate string) (string, error) {
	if v, ok := m[key]; ok {
		return v, nil
	}
	m[key] = candidate
	return candidate, nil
}

func TestVoters_ResolveIsStable(t *testing.T) {
	ctx := context.Background()
	svc := app.NewVoterService(memTokens{})

	key := svc.NewClientKey()
	a, err := svc.Resolve(ctx, key)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := svc.Resolve(ctx, key)
	if a == "" || a != b {
		t.Fatalf("unstable voter id: %q vs %q", a, b)
	}
	other, _ := svc.Resolve(ctx, svc.NewClientKey())
	if other == a {
		t.Fatal("distinct keys share a voter id")
	}

	if _, err := svc.Resolve(ctx, " "); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("blank key: %v", err)
	}
}

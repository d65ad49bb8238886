package redisad

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const voterKeyPrefix = "voter:"

// VoterTokens persists one opaque voter token per client key.
type VoterTokens struct{ c redis.UniversalClient }

func NewVoterTokens(c redis.UniversalClient) *VoterTokens { return &VoterTokens{c: c} }

// GetOrCreate stores candidate with SETNX so racing first calls for the same
// key all end up with whichever token landed first.
func (v *VoterTokens) GetOrCreate(ctx context.Context, key, candidate string) (string, error) {
	k := voterKeyPrefix + key
	if err := v.c.SetNX(ctx, k, candidate, 0).Err(); err != nil {
		return "", err
	}
	return v.c.Get(ctx, k).Result()
}

// Package denylist implements the revocation list for logged-out tokens.
package denylist

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DenylistRedis tracks revoked tokens in Redis until their natural expiry.
// Entries carry a TTL equal to the token's remaining lifetime, so the list
// cleans itself up and never outgrows the set of live tokens.
type DenylistRedis struct {
	client *redis.Client
	prefix string
}

// NewDenylistRedis creates a new DenylistRedis instance.
func NewDenylistRedis(client *redis.Client, prefix string) *DenylistRedis {
	return &DenylistRedis{
		client: client,
		prefix: prefix,
	}
}

// tokenKey returns the Redis key for a token.
// Tokens are hashed so raw credentials never appear in Redis.
func (d *DenylistRedis) tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%s:%s", d.prefix, hex.EncodeToString(sum[:]))
}

// Add revokes a token for the given remaining lifetime.
// A non-positive ttl means the token has already expired naturally and
// nothing needs to be stored.
func (d *DenylistRedis) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, d.tokenKey(token), "1", ttl).Err()
}

// Contains reports whether a token has been revoked.
func (d *DenylistRedis) Contains(ctx context.Context, token string) (bool, error) {
	n, err := d.client.Exists(ctx, d.tokenKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

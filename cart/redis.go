package cart

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cart:"

// RedisPersister keeps one snapshot per session under "cart:<session>".
// No TTL: an abandoned cart survives until the shopper clears it.
type RedisPersister struct {
	client *redis.Client
}

func NewRedisPersister(client *redis.Client) *RedisPersister {
	return &RedisPersister{client: client}
}

func (p *RedisPersister) Save(ctx context.Context, sessionID string, snapshot []byte) error {
	return p.client.Set(ctx, keyPrefix+sessionID, snapshot, 0).Err()
}

func (p *RedisPersister) Load(ctx context.Context, sessionID string) ([]byte, error) {
	raw, err := p.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (p *RedisPersister) Delete(ctx context.Context, sessionID string) error {
	return p.client.Del(ctx, keyPrefix+sessionID).Err()
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lightvector/ogstosgf/internal/domain/conversion"
	apperrors "github.com/lightvector/ogstosgf/internal/errors"
)

const sgfKeyPrefix = "sgf:"

// SGFCache keeps produced documents in Redis by game id.
type SGFCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewSGFCache(client *redis.Client, ttl time.Duration) *SGFCache {
	return &SGFCache{
		redis: client,
		ttl:   ttl,
	}
}

func sgfKey(gameID string) string {
	return sgfKeyPrefix + gameID
}

// Save caches the document of conv. Records without a game id are skipped.
func (c *SGFCache) Save(ctx context.Context, conv conversion.Conversion) error {
	if conv.GameID == "" {
		return nil
	}
	return c.SaveSGF(ctx, conv.GameID, conv.SGF)
}

func (c *SGFCache) SaveSGF(ctx context.Context, gameID, text string) error {
	if gameID == "" {
		return apperrors.ErrNoGameID
	}
	if err := c.redis.Set(ctx, sgfKey(gameID), text, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", sgfKey(gameID), err)
	}
	return nil
}

func (c *SGFCache) LoadSGF(ctx context.Context, gameID string) (string, error) {
	text, err := c.redis.Get(ctx, sgfKey(gameID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperrors.ErrSGFNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", sgfKey(gameID), err)
	}
	return text, nil
}

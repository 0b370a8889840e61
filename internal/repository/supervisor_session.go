package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/opslink/opslink_cad/internal/service"
	"github.com/redis/go-redis/v9"
)

// SupervisorSessionStore хранит отметки о пройденной проверке супервизора
// в Redis с TTL: отметка живет не дольше сессии и исчезает сама
type SupervisorSessionStore struct {
	redisClient *redis.Client
}

func NewSupervisorSessionStore(redisClient *redis.Client) service.SupervisorSessionStore {
	return &SupervisorSessionStore{redisClient: redisClient}
}

func supervisorSessionKey(tokenID string) string {
	return fmt.Sprintf("supervisor_session:%s", tokenID)
}

// MarkVerified ставит отметку для сессии на срок ttl
func (s *SupervisorSessionStore) MarkVerified(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := s.redisClient.Set(ctx, supervisorSessionKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to mark supervisor session: %w", err)
	}
	return nil
}

// IsVerified проверяет наличие отметки для сессии
func (s *SupervisorSessionStore) IsVerified(ctx context.Context, tokenID string) (bool, error) {
	_, err := s.redisClient.Get(ctx, supervisorSessionKey(tokenID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check supervisor session: %w", err)
	}
	return true, nil
}

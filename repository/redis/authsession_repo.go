package redis

import (
	"context"
	"encoding/json"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/faisalthe1/AI-Study-Planner/domain"
	"github.com/faisalthe1/AI-Study-Planner/repository"
)

type authSessionRepository struct {
	client *redislib.Client
	prefix string
	ttl    time.Duration
}

// NewAuthSessionRepository creates a Redis-backed login session repository.
func NewAuthSessionRepository(client *redislib.Client, ttl time.Duration) repository.AuthSessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &authSessionRepository{
		client: client,
		prefix: "auth_session:",
		ttl:    ttl,
	}
}

func (r *authSessionRepository) Get(ctx context.Context, id string) (*domain.AuthSession, error) {
	result, err := r.client.Get(ctx, r.prefix+id).Result()
	if err != nil {
		if err == redislib.Nil {
			return nil, domain.ErrAuthSessionNotFound
		}
		return nil, err
	}

	var session domain.AuthSession
	if err := json.Unmarshal([]byte(result), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *authSessionRepository) Save(ctx context.Context, session *domain.AuthSession) error {
	if session == nil || session.ID == "" {
		return domain.ErrInvalidPayload
	}

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	if session.ExpiresAt.Before(session.CreatedAt) {
		session.ExpiresAt = session.CreatedAt.Add(r.ttl)
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		ttl = r.ttl
	}

	return r.client.Set(ctx, r.prefix+session.ID, payload, ttl).Err()
}

func (r *authSessionRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.prefix+id).Err()
}

func (r *authSessionRepository) Extend(ctx context.Context, id string, ttlSeconds int) error {
	duration := time.Duration(ttlSeconds) * time.Second
	if duration <= 0 {
		duration = r.ttl
	}
	return r.client.Expire(ctx, r.prefix+id, duration).Err()
}

package session

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	apperrors "blackeagles/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Session is a logged-in admin.
type Session struct {
	Token     string
	Username  string
	CreatedAt time.Time
}

type Store interface {
	Create(ctx context.Context, username string) (*Session, error)
	// Get returns ErrSessionNotFound for unknown or expired tokens.
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) key(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func (s *RedisStore) Create(ctx context.Context, username string) (*Session, error) {
	sess := &Session{
		Token:     uuid.New().String(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	key := s.key(sess.Token)

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"username":   sess.Username,
		"created_at": sess.CreatedAt.Unix(),
	})
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, apperrors.ErrSessionNotFound
	}
	result, err := s.client.HGetAll(ctx, s.key(token)).Result()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if len(result) == 0 {
		return nil, apperrors.ErrSessionNotFound
	}

	created, err := strconv.ParseInt(result["created_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at: %v", err)
	}
	return &Session{
		Token:     token,
		Username:  result["username"],
		CreatedAt: time.Unix(created, 0).UTC(),
	}, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}

// MemoryStore keeps sessions in process. Used by tests and when Redis is absent.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*Session
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

func (s *MemoryStore) Create(_ context.Context, username string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		Token:     uuid.New().String(),
		Username:  username,
		CreatedAt: s.now().UTC(),
	}
	s.sessions[sess.Token] = sess
	return sess, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	if s.ttl > 0 && s.now().Sub(sess.CreatedAt) > s.ttl {
		delete(s.sessions, token)
		return nil, apperrors.ErrSessionNotFound
	}
	return sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

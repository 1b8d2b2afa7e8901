package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-triage/internal/domain/intake"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "pet-triage:session:"

type Options struct {
	Address  string
	Password string
	DB       int
}

// NewClient arma el cliente con timeouts acotados.
func NewClient(opts Options) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:         opts.Address,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
}

// SessionStore guarda cada sesión como JSON bajo pet-triage:session:{user_id}.
type SessionStore struct {
	rdb *goredis.Client
	ttl time.Duration
}

// idleTTL expira sesiones sin actividad; 0 = sin expiración.
func NewSessionStore(rdb *goredis.Client, idleTTL time.Duration) *SessionStore {
	if idleTTL < 0 {
		idleTTL = 0
	}
	return &SessionStore{rdb: rdb, ttl: idleTTL}
}

func Key(userID string) string {
	return keyPrefix + strings.TrimSpace(userID)
}

func (s *SessionStore) Ping(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, userID string) (intake.Session, error) {
	raw, err := s.rdb.Get(ctx, Key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return intake.Session{}, intake.ErrSessionNotFound
		}
		return intake.Session{}, fmt.Errorf("redis get session %s: %w", userID, err)
	}

	var sess intake.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return intake.Session{}, fmt.Errorf("decode session %s: %w", userID, err)
	}
	if sess.Answers == nil {
		sess.Answers = make(map[intake.Field]string)
	}
	return sess, nil
}

func (s *SessionStore) Save(ctx context.Context, sess intake.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", sess.UserID, err)
	}
	if err := s.rdb.Set(ctx, Key(sess.UserID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session %s: %w", sess.UserID, err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, userID string) error {
	if err := s.rdb.Del(ctx, Key(userID)).Err(); err != nil {
		return fmt.Errorf("redis del session %s: %w", userID, err)
	}
	return nil
}

func (s *SessionStore) Close() error {
	return s.rdb.Close()
}

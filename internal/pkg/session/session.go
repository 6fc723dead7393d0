package session

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"

	"github.com/janmarg/CivicPortal/internal/pkg/config"
)

var sessionStore *session.Store

// NewSessionStore creates the Redis-backed session store. Sessions live in
// database 1 so they never collide with the statistics cache (DB 0).
func NewSessionStore(cfg config.CacheConfig) *session.Store {
	port := 6379
	if v, err := strconv.Atoi(cfg.Port); err == nil {
		port = v
	}

	storage := redis.New(redis.Config{
		Host:     cfg.Host,
		Port:     port,
		Password: cfg.Password,
		Database: 1, // Separate database for sessions
		Reset:    false,
	})

	sessionStore = session.New(session.Config{
		Storage:        storage,
		CookieHTTPOnly: true,
		// CookieSecure:   true, // Enable in production with HTTPS
		Expiration: time.Hour * 1,
		KeyLookup:  "cookie:session_id",
	})

	return sessionStore
}

func GetSessionStore() *session.Store {
	return sessionStore
}

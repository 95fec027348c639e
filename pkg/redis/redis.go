package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gestion-notes/config"
)

// Client enveloppe du client Redis
// Utilisé pour la limitation de débit et l'état de santé ; le service
// fonctionne sans Redis (mode dégradé, voir middleware.RateLimit).
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient ouvre la connexion Redis et vérifie le Ping
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connexion Redis: %w", err)
	}

	logger.Info("connexion Redis établie", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── Limitation de débit ──

// CheckRateLimit incrémente le compteur de la fenêtre et indique si la
// requête est autorisée. Fenêtre fixe : la clé expire à la première requête.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// Ping vérifie la disponibilité de Redis
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close ferme la connexion Redis
func (c *Client) Close() error {
	return c.rdb.Close()
}

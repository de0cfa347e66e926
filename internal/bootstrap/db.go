package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/config"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/db"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/storage/postgres"
)

const (
	connectTimeout = 5 * time.Second
	pingTimeout    = 2 * time.Second
)

// OpenDB opens the API's pgx pool and applies the schema.
func OpenDB(ctx context.Context, cfg *config.DatabaseConfig) (*db.DB, error) {
	cctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	d, err := db.Open(cctx, db.Options{
		DSN:      postgres.DSN(cfg),
		MaxConns: cfg.MaxConns,
		MinConns: cfg.MinConns,
	})
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	if err := postgres.Migrate(cctx, d.SQL); err != nil {
		d.Close()
		return nil, fmt.Errorf("db migrate: %w", err)
	}
	return d, nil
}

// OpenRedis connects to Redis and verifies the connection.
func OpenRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

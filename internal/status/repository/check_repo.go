package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/status/domain"
)

const (
	checkKeyPrefix  = "status:check:"  // status:check:{id} -> JSON
	checksIndexKey  = "status:checks"  // ZSET of ids scored by created_at
	clientKeyPrefix = "status:client:" // status:client:{name} -> ZSET of ids
	clientsKey      = "status:clients" // SET of client names
)

// CheckRepository stores status checks in Redis. Checks are indexed by
// creation time globally and per client.
type CheckRepository struct {
	client *redis.Client
	now    func() time.Time
}

func NewCheckRepository(client *redis.Client) *CheckRepository {
	return &CheckRepository{client: client, now: time.Now}
}

// Create assigns an id and creation time when unset and stores c.
func (r *CheckRepository) Create(ctx context.Context, c *domain.Check) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.now().UTC()
	}
	if c.Metadata == nil {
		c.Metadata = map[string]any{}
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal status check: %w", err)
	}

	member := redis.Z{Score: score(c.CreatedAt), Member: c.ID}
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, checkKey(c.ID), data, 0)
	pipe.ZAdd(ctx, checksIndexKey, member)
	pipe.ZAdd(ctx, clientKey(c.ClientName), member)
	pipe.SAdd(ctx, clientsKey, c.ClientName)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create status check: %w", err)
	}
	return nil
}

func (r *CheckRepository) Get(ctx context.Context, id string) (*domain.Check, error) {
	data, err := r.client.Get(ctx, checkKey(id)).Result()
	if err == redis.Nil {
		return nil, domain.ErrCheckNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get status check: %w", err)
	}
	var c domain.Check
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal status check: %w", err)
	}
	return &c, nil
}

// Recent returns up to limit checks, newest first.
func (r *CheckRepository) Recent(ctx context.Context, limit int) ([]domain.Check, error) {
	if limit <= 0 {
		return []domain.Check{}, nil
	}
	ids, err := r.client.ZRevRange(ctx, checksIndexKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list status checks: %w", err)
	}
	return r.load(ctx, ids)
}

// ByClient returns every check of the named client, newest first.
func (r *CheckRepository) ByClient(ctx context.Context, name string) ([]domain.Check, error) {
	ids, err := r.client.ZRevRange(ctx, clientKey(name), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list status checks for client: %w", err)
	}
	return r.load(ctx, ids)
}

// Since returns the checks created at or after t, newest first.
func (r *CheckRepository) Since(ctx context.Context, t time.Time) ([]domain.Check, error) {
	ids, err := r.client.ZRevRangeByScore(ctx, checksIndexKey, &redis.ZRangeBy{
		Min: formatScore(score(t)),
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list status checks since %s: %w", t.Format(time.RFC3339), err)
	}
	return r.load(ctx, ids)
}

// ClientStats counts checks per client, busiest client first.
func (r *CheckRepository) ClientStats(ctx context.Context) (*domain.ClientStats, error) {
	names, err := r.client.SMembers(ctx, clientsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	stats := make([]domain.ClientStat, 0, len(names))
	for _, name := range names {
		key := clientKey(name)
		n, err := r.client.ZCard(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to count checks for %s: %w", name, err)
		}
		if n == 0 {
			continue
		}
		last, err := r.client.ZRevRangeWithScores(ctx, key, 0, 0).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get last check for %s: %w", name, err)
		}
		st := domain.ClientStat{ClientName: name, CheckCount: n}
		if len(last) > 0 {
			st.LastCheck = fromScore(last[0].Score)
		}
		stats = append(stats, st)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].CheckCount != stats[j].CheckCount {
			return stats[i].CheckCount > stats[j].CheckCount
		}
		return stats[i].ClientName < stats[j].ClientName
	})
	return &domain.ClientStats{TotalClients: len(stats), Clients: stats}, nil
}

// CleanupOlderThan deletes checks created more than days days ago and
// returns how many were removed.
func (r *CheckRepository) CleanupOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := r.now().Add(-time.Duration(days) * 24 * time.Hour)
	ids, err := r.client.ZRangeByScore(ctx, checksIndexKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: "(" + formatScore(score(cutoff)),
	}).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to find old status checks: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	checks, err := r.load(ctx, ids)
	if err != nil {
		return 0, err
	}

	members := make([]any, len(ids))
	for i, id := range ids {
		members[i] = id
	}
	clients := map[string]struct{}{}

	pipe := r.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, checkKey(id))
	}
	pipe.ZRem(ctx, checksIndexKey, members...)
	for _, c := range checks {
		pipe.ZRem(ctx, clientKey(c.ClientName), c.ID)
		clients[c.ClientName] = struct{}{}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to delete old status checks: %w", err)
	}

	// Drop clients left without checks.
	for name := range clients {
		n, err := r.client.ZCard(ctx, clientKey(name)).Result()
		if err != nil {
			return 0, fmt.Errorf("failed to count checks for %s: %w", name, err)
		}
		if n == 0 {
			if err := r.client.SRem(ctx, clientsKey, name).Err(); err != nil {
				return 0, fmt.Errorf("failed to remove client %s: %w", name, err)
			}
		}
	}
	return int64(len(ids)), nil
}

// load fetches checks by id in order, skipping ids whose record is gone.
func (r *CheckRepository) load(ctx context.Context, ids []string) ([]domain.Check, error) {
	out := make([]domain.Check, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = checkKey(id)
	}
	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load status checks: %w", err)
	}
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var c domain.Check
		if err := json.Unmarshal([]byte(s), &c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal status check: %w", err)
		}
		out = append(out, c)
	}
	return out, nil
}

func checkKey(id string) string {
	return checkKeyPrefix + id
}

func clientKey(name string) string {
	return clientKeyPrefix + name
}

// Scores are Unix microseconds, which a float64 holds exactly.
func score(t time.Time) float64 {
	return float64(t.UnixMicro())
}

func fromScore(s float64) time.Time {
	return time.UnixMicro(int64(s)).UTC()
}

func formatScore(s float64) string {
	return strconv.FormatFloat(s, 'f', 0, 64)
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/airreserve/config"
	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps search results per query and indexes them by route so a
// booking can drop every cached result that might show stale seat counts.
type RedisCache struct {
	client    *redis.Client
	searchTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, searchTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		searchTTL: searchTTL,
	}
}

// routeVersionTTL bounds how long an idle route keeps its version counter.
const routeVersionTTL = 24 * time.Hour

// GetSearch returns the cached result for q (nil on a miss) and the route
// version it was read at. Pass the version back to SetSearch.
func (c *RedisCache) GetSearch(ctx context.Context, q domain.SearchQuery) ([]domain.Flight, int64, error) {
	var data, version *redis.StringCmd
	_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		data = pipe.Get(ctx, searchKey(q))
		version = pipe.Get(ctx, routeVersionKey(q.Route()))
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, err
	}

	v, err := version.Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, err
	}

	raw, err := data.Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, v, nil
	}
	if err != nil {
		return nil, 0, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(raw, &flights); err != nil {
		return nil, 0, err
	}
	return flights, v, nil
}

// SetSearch stores flights for q unless the route was invalidated after
// version was read. A search that hit the database before a booking
// committed must not re-cache the old seat counts.
func (c *RedisCache) SetSearch(ctx context.Context, q domain.SearchQuery, version int64, flights []domain.Flight) error {
	if flights == nil {
		flights = []domain.Flight{}
	}
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}

	key, index, versionKey := searchKey(q), routeIndexKey(q.Route()), routeVersionKey(q.Route())
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, c.searchTTL)
			pipe.SAdd(ctx, index, key)
			pipe.Expire(ctx, index, c.searchTTL)
			return nil
		})
		return err
	}, versionKey)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

// InvalidateRoute bumps the route version and drops every cached search on it.
func (c *RedisCache) InvalidateRoute(ctx context.Context, route domain.Route) error {
	versionKey, index := routeVersionKey(route), routeIndexKey(route)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey)
		pipe.Expire(ctx, versionKey, routeVersionTTL)
		return nil
	})
	if err != nil {
		return err
	}

	keys, err := c.client.SMembers(ctx, index).Result()
	if err != nil {
		return err
	}
	return c.client.Del(ctx, append(keys, index)...).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func routePart(r domain.Route) string {
	return fmt.Sprintf("%s:%s:%s", r.Departure, r.Destination, r.Date.Format(domain.DateLayout))
}

func searchKey(q domain.SearchQuery) string {
	airline, _ := q.AirlineFilter()
	return fmt.Sprintf("cache:flights:search:%s:%d:%s:%s", routePart(q.Route()), q.Travelers, airline, q.Sort)
}

func routeIndexKey(r domain.Route) string {
	return "cache:flights:route:" + routePart(r)
}

func routeVersionKey(r domain.Route) string {
	return "cache:flights:version:" + routePart(r)
}

package rdx

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Init connects the shared Redis client. REDIS_ADDR overrides the default
// local instance.
func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
	if err := Conn.Ping(context.Background()).Err(); err != nil {
		// The bridge degrades to in-memory state when Redis is away;
		// every failed save is logged there.
		log.Printf("Redis not reachable at %s: %v", addr, err)
	}
}

// SlotStore adapts the shared connection to the persistence bridge's
// store contract: one document per key, no expiry.
type SlotStore struct{}

func (SlotStore) Save(ctx context.Context, key string, data []byte) error {
	return Conn.Set(ctx, key, data, 0).Err()
}

func (SlotStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := Conn.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

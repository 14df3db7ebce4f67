package comparison

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// DefaultStorageKey is the single durable slot holding the selected
// product ids.
const DefaultStorageKey = "comparehub:comparison-ids"

// Store persists the selection as one JSON-encoded id sequence. The
// set logic never depends on the concrete mechanism behind it.
type Store interface {
	Load() ([]int, error)
	Save(ids []int) error
}

type RedisStore struct {
	client redis.Cmdable
	key    string
}

func NewRedisStore(client redis.Cmdable, key string) *RedisStore {
	if key == "" {
		key = DefaultStorageKey
	}
	return &RedisStore{client: client, key: key}
}

// Load reads the persisted id sequence. A missing or corrupt value is
// treated as an empty selection, never as an error.
func (s *RedisStore) Load() ([]int, error) {
	raw, err := s.client.Get(context.Background(), s.key).Result()
	if err != nil {
		if err == redis.Nil {
			return []int{}, nil
		}
		log.Println(err)
		return nil, err
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Println(err)
		return []int{}, nil
	}

	if ids == nil {
		ids = []int{}
	}

	return ids, nil
}

func (s *RedisStore) Save(ids []int) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}

	if err := s.client.Set(context.Background(), s.key, data, 0).Err(); err != nil {
		log.Println(err)
		return err
	}

	return nil
}

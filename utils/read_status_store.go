package utils

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-redis/redis/v8"
)

// ReadStatusStore remembers which posts a logged-in reader has already
// opened, keyed per user in redis. The server runs fine without redis; the
// store is simply not wired in that case.
type ReadStatusStore struct {
	inner     *redis.Client
	keyParser RedisKeyParser
}

const (
	// Redis only has string type, there is no boolean or int, so we use "1" to represent true
	RedisTrue  = "1"
	RedisFalse = "0"
)

var ctx = context.Background()

func GetReadStatusStore() (*ReadStatusStore, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT")),
		Password: os.Getenv("REDIS_PASSWD"),
		DB:       0, // use default DB
	})
	_, err := redisClient.Ping(ctx).Result()
	if err != nil {
		return nil, err
	}
	return &ReadStatusStore{
		inner:     redisClient,
		keyParser: RedisKeyParser{delimiter: "__"},
	}, nil
}

type RedisKeyParser struct {
	delimiter string
}

func (r RedisKeyParser) DecodePostKey(key string) (string, string, error) {
	splits := strings.Split(key, r.delimiter)
	if len(splits) != 2 {
		return "", "", fmt.Errorf("invalid key: %s", key)
	}
	return splits[0], splits[1], nil
}

// Ids containing the delimiter would produce ambiguous keys.
func (r RedisKeyParser) ValidateId(id string) bool {
	return !strings.Contains(id, r.delimiter)
}

func (r RedisKeyParser) EncodePostKey(userId string, postId string) (string, error) {
	if !r.ValidateId(userId) || !r.ValidateId(postId) {
		return "", fmt.Errorf("invalid userId or postId")
	}
	return userId + r.delimiter + postId, nil
}

// GetPostsReadStatus returns, for each post id in order, whether the user
// has opened it before.
func (r *ReadStatusStore) GetPostsReadStatus(postIds []string, userId string) ([]bool, error) {
	// MGET with zero keys is an arity error in redis.
	if len(postIds) == 0 {
		return []bool{}, nil
	}

	keys := make([]string, 0, len(postIds))
	for _, pid := range postIds {
		key, err := r.keyParser.EncodePostKey(userId, pid)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	res, err := r.inner.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	status := make([]bool, 0, len(res))
	for _, v := range res {
		status = append(status, v == RedisTrue)
	}
	return status, nil
}

// MarkPostRead records that the user opened the post.
func (r *ReadStatusStore) MarkPostRead(postId string, userId string) error {
	key, err := r.keyParser.EncodePostKey(userId, postId)
	if err != nil {
		return err
	}
	return r.inner.Set(ctx, key, RedisTrue, 0).Err()
}

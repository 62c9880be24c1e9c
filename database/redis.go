package database

import (
	"cafe_manager/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

func ConnectRedis() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Redis = redis.NewClient(&redis.Options{Addr: addr})
}

package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"furnishfusion_back_end/internal/config"
)

// ConnectRedis retourne nil quand REDIS_HOST n'est pas configuré : le rate
// limit des logins est alors simplement désactivé.
func ConnectRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisHost == "" {
		log.Println("⚠️ Redis non configuré — rate limit désactivé")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("⚠️ Redis injoignable — rate limit désactivé :", err)
		return nil
	}

	log.Println("✅ Connecté à Redis")
	return client
}

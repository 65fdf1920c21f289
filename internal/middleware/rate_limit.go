package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	LoginMaxAttempts = 5
	LoginCooldown    = 15 * time.Minute
)

// LoginRateLimit limite les tentatives de connexion par identifiant soumis
// dans le formulaire (champ "email" ou "username"). Sans client Redis le
// middleware est transparent.
func LoginRateLimit(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ident := c.PostForm("email")
		if ident == "" {
			ident = c.PostForm("username")
		}
		if ident == "" {
			c.Next()
			return
		}

		ctx := context.Background()
		key := "login_attempts:" + ident
		cooldownKey := "login_cooldown:" + ident

		if rdb.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := rdb.TTL(ctx, cooldownKey).Val()
			c.String(http.StatusTooManyRequests,
				fmt.Sprintf("Too many failed attempts. Try again in %d minutes.", int(ttl.Minutes())))
			c.Abort()
			return
		}

		attempts, _ := rdb.Get(ctx, key).Int()
		if attempts >= LoginMaxAttempts {
			// Active le cooldown
			rdb.Set(ctx, cooldownKey, "1", LoginCooldown)
			rdb.Del(ctx, key)
			c.String(http.StatusTooManyRequests,
				fmt.Sprintf("Too many failed attempts. Locked for %d minutes.", int(LoginCooldown.Minutes())))
			c.Abort()
			return
		}

		c.Next()

		// Les handlers de login posent ce flag quand les identifiants sont
		// invalides ; un login réussi remet les compteurs à zéro.
		if c.GetBool("login_failed") {
			rdb.Incr(ctx, key)
			rdb.Expire(ctx, key, LoginCooldown)
		} else {
			rdb.Del(ctx, key)
			rdb.Del(ctx, cooldownKey)
		}
	}
}

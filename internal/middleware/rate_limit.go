package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoponline_web/internal/cache"
)

const (
	LoginMaxAttempts    = 5
	RegisterMaxAttempts = 3
	CartAddMaxRequests  = 20

	LoginCooldown    = 15 * time.Minute
	RegisterCooldown = 30 * time.Minute
	CartAddWindow    = 1 * time.Minute
)

// LimitedPage affiche la page de refus ; retryAfter est la durée d'attente restante.
type LimitedPage func(c *gin.Context, retryAfter time.Duration)

// RateLimiter regroupe les limites anti-abus des formulaires. En cas
// d'erreur du compteur la requête passe.
type RateLimiter struct {
	counter cache.Counter
	log     *zap.Logger
	page    LimitedPage
}

func NewRateLimiter(counter cache.Counter, log *zap.Logger, page LimitedPage) *RateLimiter {
	return &RateLimiter{counter: counter, log: log, page: page}
}

func (rl *RateLimiter) limited(c *gin.Context, retryAfter time.Duration) {
	c.Header("Retry-After", fmt.Sprintf("%d", int(retryAfter.Seconds())))
	rl.page(c, retryAfter)
	c.Abort()
}

// cooldown renvoie la durée restante si la clé de blocage existe.
func (rl *RateLimiter) cooldown(ctx context.Context, key string) time.Duration {
	ttl, err := rl.counter.TTL(ctx, key)
	if err != nil {
		rl.log.Warn("⚠️ erreur lecture cooldown", zap.String("key", key), zap.Error(err))
		return 0
	}
	return ttl
}

// Login limite les échecs de connexion par email : au-delà de
// LoginMaxAttempts échecs, l'email est bloqué pendant LoginCooldown.
func (rl *RateLimiter) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
		if email == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "login_attempts:" + email
		cooldownKey := "login_cooldown:" + email

		if ttl := rl.cooldown(ctx, cooldownKey); ttl > 0 {
			rl.limited(c, ttl)
			return
		}

		attempts, err := rl.counter.Get(ctx, key)
		if err != nil {
			rl.log.Warn("⚠️ erreur lecture tentatives", zap.Error(err))
		}
		if attempts >= LoginMaxAttempts {
			_ = rl.counter.SetFlag(ctx, cooldownKey, LoginCooldown)
			_ = rl.counter.Del(ctx, key)
			rl.log.Warn("🔒 connexion bloquée", zap.String("email", email))
			rl.limited(c, LoginCooldown)
			return
		}

		c.Next()

		switch c.Writer.Status() {
		case http.StatusUnauthorized:
			if _, err := rl.counter.Incr(ctx, key, LoginCooldown); err != nil {
				rl.log.Warn("⚠️ erreur incrément tentatives", zap.Error(err))
			}
		case http.StatusSeeOther:
			_ = rl.counter.Del(ctx, key, cooldownKey)
		}
	}
}

// Register limite les inscriptions réussies par IP.
func (rl *RateLimiter) Register() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ip := c.ClientIP()
		key := "register_attempts:" + ip
		cooldownKey := "register_cooldown:" + ip

		if ttl := rl.cooldown(ctx, cooldownKey); ttl > 0 {
			rl.limited(c, ttl)
			return
		}

		attempts, _ := rl.counter.Get(ctx, key)
		if attempts >= RegisterMaxAttempts {
			_ = rl.counter.SetFlag(ctx, cooldownKey, RegisterCooldown)
			_ = rl.counter.Del(ctx, key)
			rl.limited(c, RegisterCooldown)
			return
		}

		c.Next()

		// Seule une inscription réussie redirige vers /login.
		if c.Writer.Status() == http.StatusSeeOther {
			_, _ = rl.counter.Incr(ctx, key, RegisterCooldown)
		}
	}
}

// CartAdd limite les ajouts au panier par utilisateur.
func (rl *RateLimiter) CartAdd() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := AuthFrom(c).UserID
		if userID == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "cart_add:" + userID

		requests, err := rl.counter.Get(ctx, key)
		if err != nil {
			rl.log.Warn("⚠️ erreur lecture compteur panier", zap.Error(err))
		}
		if requests >= CartAddMaxRequests {
			retryAfter := rl.cooldown(ctx, key)
			if retryAfter <= 0 {
				retryAfter = CartAddWindow
			}
			rl.limited(c, retryAfter)
			return
		}
		if _, err := rl.counter.Incr(ctx, key, CartAddWindow); err != nil {
			rl.log.Warn("⚠️ erreur incrément compteur panier", zap.Error(err))
		}
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", CartAddMaxRequests-requests-1))

		c.Next()
	}
}

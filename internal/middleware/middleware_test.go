package middleware

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"shoponline_web/internal/backend"
	"shoponline_web/internal/cache"
	"shoponline_web/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func limitedPage(c *gin.Context, retryAfter time.Duration) {
	c.String(http.StatusTooManyRequests, "wait %d", int(math.Ceil(retryAfter.Minutes())))
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	var seen string
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		seen = backend.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", seen)
}

func TestLoginRateLimit(t *testing.T) {
	counter := cache.NewMemoryCounter()
	rl := NewRateLimiter(counter, zap.NewNop(), limitedPage)

	password := "wrong"
	r := gin.New()
	r.POST("/login", rl.Login(), func(c *gin.Context) {
		if c.PostForm("senha") == "right" {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		c.String(http.StatusUnauthorized, "bad")
	})

	attempt := func() int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, postForm("/login", url.Values{"email": {"Ana@Example.com"}, "senha": {password}}))
		return w.Code
	}

	for i := 0; i < LoginMaxAttempts; i++ {
		require.Equal(t, http.StatusUnauthorized, attempt())
	}
	assert.Equal(t, http.StatusTooManyRequests, attempt())

	// le bon mot de passe est lui aussi refusé pendant le cooldown
	password = "right"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/login", url.Values{"email": {"ana@example.com"}, "senha": {password}}))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "wait 15", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestLoginSuccessResetsAttempts(t *testing.T) {
	counter := cache.NewMemoryCounter()
	rl := NewRateLimiter(counter, zap.NewNop(), limitedPage)

	r := gin.New()
	r.POST("/login", rl.Login(), func(c *gin.Context) {
		if c.PostForm("senha") == "right" {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		c.String(http.StatusUnauthorized, "bad")
	})

	for i := 0; i < LoginMaxAttempts-1; i++ {
		r.ServeHTTP(httptest.NewRecorder(), postForm("/login", url.Values{"email": {"a@b.c"}, "senha": {"x"}}))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/login", url.Values{"email": {"a@b.c"}, "senha": {"right"}}))
	require.Equal(t, http.StatusSeeOther, w.Code)

	n, _ := counter.Get(context.Background(), "login_attempts:a@b.c")
	assert.Zero(t, n)
}

func TestRegisterRateLimitCountsSuccessesOnly(t *testing.T) {
	rl := NewRateLimiter(cache.NewMemoryCounter(), zap.NewNop(), limitedPage)

	r := gin.New()
	r.POST("/register", rl.Register(), func(c *gin.Context) {
		if c.PostForm("ok") == "1" {
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		c.String(http.StatusBadRequest, "invalid")
	})

	send := func(ok string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, postForm("/register", url.Values{"ok": {ok}}))
		return w.Code
	}

	for i := 0; i < 10; i++ {
		require.Equal(t, http.StatusBadRequest, send("0"))
	}
	for i := 0; i < RegisterMaxAttempts; i++ {
		require.Equal(t, http.StatusSeeOther, send("1"))
	}
	assert.Equal(t, http.StatusTooManyRequests, send("1"))
}

func TestCartAddRateLimit(t *testing.T) {
	rl := NewRateLimiter(cache.NewMemoryCounter(), zap.NewNop(), limitedPage)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(ctxAuth, session.Auth{Token: "t", UserID: "u1"})
	})
	r.POST("/cart/add", rl.CartAdd(), func(c *gin.Context) { c.Status(http.StatusSeeOther) })

	for i := 0; i < CartAddMaxRequests; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, postForm("/cart/add", url.Values{}))
		require.Equal(t, http.StatusSeeOther, w.Code, "request %d", i)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/cart/add", url.Values{}))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

// fullCounter simule un compteur plein dont la fenêtre expire dans ttl.
type fullCounter struct {
	cache.Counter
	ttl time.Duration
}

func (f fullCounter) Get(context.Context, string) (int64, error) { return CartAddMaxRequests, nil }

func (f fullCounter) TTL(context.Context, string) (time.Duration, error) { return f.ttl, nil }

func TestCartAddRetryAfterUsesRemainingWindow(t *testing.T) {
	rl := NewRateLimiter(fullCounter{ttl: 12 * time.Second}, zap.NewNop(), limitedPage)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(ctxAuth, session.Auth{Token: "t", UserID: "u1"})
	})
	r.POST("/cart/add", rl.CartAdd(), func(c *gin.Context) { c.Status(http.StatusSeeOther) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/cart/add", url.Values{}))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "12", w.Header().Get("Retry-After"))
	assert.Equal(t, "wait 1", w.Body.String())
}

func newSessionRouter(sm *session.Manager, auth session.Auth, handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(Locale(language.English), func(c *gin.Context) {
		c.Set(ctxAuth, auth)
	})
	r.GET("/private", handlers...)
	return r
}

func TestRequireLogin(t *testing.T) {
	sm := session.NewManager(session.NewCookieStore("test-secret-0123456789", false))
	ok := func(c *gin.Context) { c.String(http.StatusOK, "private") }

	t.Run("anonymous", func(t *testing.T) {
		r := newSessionRouter(sm, session.Auth{}, RequireLogin(sm, zap.NewNop(), "cart.loginRequired", nil), ok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		assert.NotEmpty(t, w.Result().Cookies())
	})

	t.Run("expired", func(t *testing.T) {
		auth := session.Auth{Token: "t", UserID: "u1", ExpiresAt: time.Now().Add(-time.Hour)}
		var sid, forgotten string
		forget := func(id string) { forgotten = id }

		r := gin.New()
		r.Use(Locale(language.English), func(c *gin.Context) {
			sid = sm.ID(c.Request)
			c.Set(ctxAuth, auth)
		})
		r.GET("/private", RequireLogin(sm, zap.NewNop(), "cart.loginRequired", forget), ok)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
		assert.Equal(t, http.StatusSeeOther, w.Code)
		require.NotEmpty(t, sid)
		assert.Equal(t, sid, forgotten)
	})

	t.Run("logged in", func(t *testing.T) {
		auth := session.Auth{Token: "t", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}
		r := newSessionRouter(sm, auth, RequireLogin(sm, zap.NewNop(), "cart.loginRequired", nil), ok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "private", w.Body.String())
	})
}

func TestRequireRole(t *testing.T) {
	sm := session.NewManager(session.NewCookieStore("test-secret-0123456789", false))
	page := func(c *gin.Context, status int, msg string) { c.String(status, msg) }
	ok := func(c *gin.Context) { c.String(http.StatusOK, "admin") }

	r := newSessionRouter(sm, session.Auth{Token: "t", UserID: "u1", Role: "customer"}, RequireRole("admin", page), ok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Administrators only", w.Body.String())

	r = newSessionRouter(sm, session.Auth{Token: "t", UserID: "u1", Role: "admin"}, RequireRole("admin", page), ok)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	r = newSessionRouter(sm, session.Auth{Token: "t", UserID: "u1"}, RequireRole("", page), ok)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

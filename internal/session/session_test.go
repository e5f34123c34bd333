package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip sauvegarde la session de r et renvoie une nouvelle requête
// portant les cookies émis.
func roundTrip(t *testing.T, m *Manager, r *http.Request) *http.Request {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, m.Save(w, r))

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		next.AddCookie(c)
	}
	return next
}

func TestAuthSurvivesRoundTrip(t *testing.T) {
	m := NewManager(NewCookieStore("test-secret-0123456789", false))
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.False(t, m.Auth(r).LoggedIn())

	exp := time.Unix(1893456000, 0)
	m.SetAuth(r, Auth{Token: "tok", UserID: "u1", UserName: "Ana", Role: "admin", ExpiresAt: exp})
	sid := m.ID(r)
	require.NotEmpty(t, sid)

	r = roundTrip(t, m, r)
	a := m.Auth(r)
	assert.True(t, a.LoggedIn())
	assert.Equal(t, "Ana", a.UserName)
	assert.Equal(t, "admin", a.Role)
	assert.True(t, exp.Equal(a.ExpiresAt))
	assert.Equal(t, sid, m.ID(r))
	assert.Equal(t, sid, m.PeekID(r))

	assert.Equal(t, sid, m.ClearAuth(r))
	r = roundTrip(t, m, r)
	assert.False(t, m.Auth(r).LoggedIn())
	assert.Empty(t, m.PeekID(r))
}

func TestFlashesAreConsumedOnce(t *testing.T) {
	m := NewManager(NewCookieStore("test-secret-0123456789", false))
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	m.Success(r, "ok")
	m.Error(r, "ko")
	r = roundTrip(t, m, r)

	f := m.Flashes(r)
	assert.Equal(t, []string{"ok"}, f.Success)
	assert.Equal(t, []string{"ko"}, f.Error)

	r = roundTrip(t, m, r)
	f = m.Flashes(r)
	assert.Empty(t, f.Success)
	assert.Empty(t, f.Error)
}

func TestTamperedCookieGivesFreshSession(t *testing.T) {
	m := NewManager(NewCookieStore("test-secret-0123456789", false))
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: Name, Value: "garbage"})

	assert.False(t, m.Auth(r).LoggedIn())
	assert.NotEmpty(t, m.ID(r))
}

func TestExpired(t *testing.T) {
	now := time.Now()
	assert.False(t, Auth{}.Expired(now))
	assert.True(t, Auth{ExpiresAt: now.Add(-time.Minute)}.Expired(now))
	assert.False(t, Auth{ExpiresAt: now.Add(time.Minute)}.Expired(now))
}

func TestReadClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u1",
		"email":   "ana@example.com",
		"role":    "admin",
		"exp":     exp.Unix(),
	}).SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	c, ok := ReadClaims(token)
	require.True(t, ok)
	assert.Equal(t, "u1", c.UserID)
	assert.Equal(t, "ana@example.com", c.Email)
	assert.Equal(t, "admin", c.Role)
	assert.True(t, exp.Equal(c.ExpiresAt))

	_, ok = ReadClaims("opaque-token")
	assert.False(t, ok)
}

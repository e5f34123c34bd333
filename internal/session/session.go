// Package session conserve côté navigateur, dans un cookie signé, ce que
// la vitrine doit retenir entre deux pages : le jeton bearer, l'utilisateur,
// les messages flash et l'identifiant du panier affiché.
package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	Name   = "shoponline"
	maxAge = 86400 * 7

	keyToken   = "token"
	keyUserID  = "user_id"
	keyName    = "user_name"
	keyRole    = "role"
	keyExpires = "expires"
	keySID     = "sid"

	flashSuccess = "success"
	flashError   = "error"
)

// NewCookieStore configure le store comme pour gothic.Store côté API.
func NewCookieStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(maxAge)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Auth est l'état d'authentification lu depuis la session.
type Auth struct {
	Token     string
	UserID    string
	UserName  string
	Role      string
	ExpiresAt time.Time
}

func (a Auth) LoggedIn() bool {
	return a.Token != "" && a.UserID != ""
}

// Expired est vrai quand le jeton porte une date d'expiration dépassée.
func (a Auth) Expired(now time.Time) bool {
	return !a.ExpiresAt.IsZero() && now.After(a.ExpiresAt)
}

type Flashes struct {
	Success []string
	Error   []string
}

// Manager lit et modifie la session de la requête. Les modifications ne
// sont envoyées au navigateur qu'à l'appel de Save.
type Manager struct {
	store sessions.Store
}

func NewManager(store sessions.Store) *Manager {
	return &Manager{store: store}
}

func (m *Manager) get(r *http.Request) *sessions.Session {
	// Un cookie illisible (secret changé, altération) donne une session neuve.
	s, _ := m.store.Get(r, Name)
	return s
}

func (m *Manager) Auth(r *http.Request) Auth {
	s := m.get(r)
	a := Auth{
		Token:    str(s.Values[keyToken]),
		UserID:   str(s.Values[keyUserID]),
		UserName: str(s.Values[keyName]),
		Role:     str(s.Values[keyRole]),
	}
	if exp, ok := s.Values[keyExpires].(int64); ok && exp > 0 {
		a.ExpiresAt = time.Unix(exp, 0)
	}
	return a
}

func (m *Manager) SetAuth(r *http.Request, a Auth) {
	s := m.get(r)
	s.Values[keyToken] = a.Token
	s.Values[keyUserID] = a.UserID
	s.Values[keyName] = a.UserName
	s.Values[keyRole] = a.Role
	if a.ExpiresAt.IsZero() {
		delete(s.Values, keyExpires)
	} else {
		s.Values[keyExpires] = a.ExpiresAt.Unix()
	}
}

// ClearAuth oublie l'utilisateur et renvoie l'ancien identifiant de session
// pour que l'appelant libère le panier associé.
func (m *Manager) ClearAuth(r *http.Request) string {
	s := m.get(r)
	sid := str(s.Values[keySID])
	for _, k := range []string{keyToken, keyUserID, keyName, keyRole, keyExpires, keySID} {
		delete(s.Values, k)
	}
	return sid
}

// ID renvoie l'identifiant de session, en le créant au besoin.
func (m *Manager) ID(r *http.Request) string {
	s := m.get(r)
	if sid := str(s.Values[keySID]); sid != "" {
		return sid
	}
	sid := uuid.NewString()
	s.Values[keySID] = sid
	return sid
}

// PeekID renvoie l'identifiant de session sans en créer.
func (m *Manager) PeekID(r *http.Request) string {
	return str(m.get(r).Values[keySID])
}

func (m *Manager) Success(r *http.Request, msg string) {
	m.get(r).AddFlash(msg, flashSuccess)
}

func (m *Manager) Error(r *http.Request, msg string) {
	m.get(r).AddFlash(msg, flashError)
}

// Flashes consomme les messages en attente.
func (m *Manager) Flashes(r *http.Request) Flashes {
	s := m.get(r)
	return Flashes{
		Success: strs(s.Flashes(flashSuccess)),
		Error:   strs(s.Flashes(flashError)),
	}
}

func (m *Manager) Save(w http.ResponseWriter, r *http.Request) error {
	return m.get(r).Save(r, w)
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}

func strs(vs []interface{}) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

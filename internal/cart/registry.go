package cart

import (
	"sync"
	"time"
)

type entry struct {
	cart    *Cart
	touched time.Time
}

// Registry associe un identifiant de session au panier de la page affichée.
// Une entrée inactive depuis plus de ttl est purgée lors d'un Put.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration
	now     func() time.Time
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		entries: make(map[string]*entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get renvoie le panier de la session, ou nil s'il n'y en a pas.
func (r *Registry) Get(sessionID string) *Cart {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[sessionID]
	if !ok {
		return nil
	}
	if r.expired(e) {
		delete(r.entries, sessionID)
		return nil
	}
	e.touched = r.now()
	return e.cart
}

// Put remplace le panier de la session (rechargement complet).
func (r *Registry) Put(sessionID string, c *Cart) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prune()
	r.entries[sessionID] = &entry{cart: c, touched: r.now()}
}

func (r *Registry) Forget(sessionID string) {
	r.mu.Lock()
	delete(r.entries, sessionID)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry) expired(e *entry) bool {
	return r.ttl > 0 && r.now().Sub(e.touched) > r.ttl
}

func (r *Registry) prune() {
	for id, e := range r.entries {
		if r.expired(e) {
			delete(r.entries, id)
		}
	}
}

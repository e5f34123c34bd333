// Package cart garde le panier affiché cohérent avec les modifications de
// l'utilisateur entre deux rechargements complets depuis le backend.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"shoponline_web/internal/models"
)

// Line est une ligne du panier. Quantity est toujours >= 1.
type Line struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Subtotal renvoie UnitPrice × Quantity, sans arrondi.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart est une liste ordonnée de lignes. Le total n'est jamais stocké :
// il est recalculé à chaque appel de Total.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

// New construit un panier à partir de lignes locales, avec les mêmes règles que FromRemote.
func New(lines ...Line) *Cart {
	c := &Cart{}
	for _, l := range lines {
		c.merge(l)
	}
	return c
}

// FromRemote construit le panier depuis la représentation du backend.
// Les lignes de quantité <= 0 sont ignorées et les doublons fusionnés à la
// position de leur première apparition. Le total envoyé par le backend est ignoré.
func FromRemote(rc models.RemoteCart) *Cart {
	c := &Cart{}
	for _, it := range rc.Items {
		c.merge(Line{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}
	return c
}

func (c *Cart) merge(l Line) {
	if l.Quantity <= 0 || l.ProductID == "" {
		return
	}
	if l.UnitPrice.IsNegative() {
		l.UnitPrice = decimal.Zero
	}
	if i := c.index(l.ProductID); i >= 0 {
		c.lines[i].Quantity += l.Quantity
		return
	}
	c.lines = append(c.lines, l)
}

func (c *Cart) index(productID string) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// SetQuantity fixe la quantité d'une ligne ; n <= 0 supprime la ligne.
// Renvoie false si le produit n'est pas dans le panier (aucun effet).
func (c *Cart) SetQuantity(productID string, n int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(productID)
	if i < 0 {
		return false
	}
	if n <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return true
	}
	c.lines[i].Quantity = n
	return true
}

// RemoveLine supprime la ligne si elle existe.
func (c *Cart) RemoveLine(productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = nil
	c.mu.Unlock()
}

// Total renvoie Σ(prix unitaire × quantité), exact. L'arrondi à deux
// décimales se fait uniquement à l'affichage.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Lines renvoie une copie des lignes, dans l'ordre.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Quantity renvoie la quantité d'un produit, 0 s'il est absent.
func (c *Cart) Quantity(productID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.index(productID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// Len est le nombre de lignes.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Count est le nombre total d'articles (somme des quantités).
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return c.Len() == 0
}

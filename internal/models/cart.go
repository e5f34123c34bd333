package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RemoteCart est le panier tel que renvoyé par GET /api/carrinho.
// Le champ Total est informatif : l'affichage le recalcule toujours à partir des lignes.
type RemoteCart struct {
	ID        string           `json:"_id"`
	Items     []RemoteCartItem `json:"itens"`
	Total     decimal.Decimal  `json:"total"`
	UpdatedAt *time.Time       `json:"dataAtualizacao,omitempty"`
}

type RemoteCartItem struct {
	ID        string          `json:"_id,omitempty"`
	ProductID string          `json:"produtoId"`
	Name      string          `json:"nome"`
	UnitPrice decimal.Decimal `json:"precoUnitario"`
	Quantity  int             `json:"quantidade"`
}

// CartLineRequest sert pour POST/PUT /api/carrinho et DELETE /api/carrinho/item.
type CartLineRequest struct {
	UserID    string `json:"usuarioId"`
	ProductID string `json:"produtoId,omitempty"`
	Quantity  int    `json:"quantidade,omitempty"`
}

package models

import "github.com/shopspring/decimal"

// LowStockThreshold : en dessous (et au-dessus de zéro) on affiche "dernières unités".
const LowStockThreshold = 5

type Product struct {
	ID          string          `json:"_id,omitempty"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	Stock       int             `json:"quantidade"`
	ImageURL    string          `json:"imagem,omitempty"`
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

func (p Product) LowStock() bool {
	return p.Stock > 0 && p.Stock <= LowStockThreshold
}

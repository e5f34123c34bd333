package backend

import (
	"context"
	"net/http"

	"shoponline_web/internal/models"
)

type productPayload struct {
	ID          string  `json:"produtoId,omitempty"`
	Name        string  `json:"nome"`
	Description string  `json:"descricao"`
	Price       float64 `json:"preco"`
	Stock       int     `json:"quantidade"`
	ImageURL    string  `json:"imagem"`
}

func toPayload(p models.Product) productPayload {
	return productPayload{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
	}
}

// ListProducts : GET /api/produtos. Le jeton est optionnel.
func (c *Client) ListProducts(ctx context.Context, token string) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, "ListProducts", http.MethodGet, "/api/produtos", token, nil, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// CreateProduct : POST /api/produtos.
func (c *Client) CreateProduct(ctx context.Context, token string, p models.Product) error {
	p.ID = ""
	return c.do(ctx, "CreateProduct", http.MethodPost, "/api/produtos", token, toPayload(p), nil)
}

// UpdateProduct : PUT /api/produtos, l'identifiant passe dans le corps.
func (c *Client) UpdateProduct(ctx context.Context, token string, p models.Product) error {
	return c.do(ctx, "UpdateProduct", http.MethodPut, "/api/produtos", token, toPayload(p), nil)
}

// DeleteProduct : DELETE /api/produtos avec {produtoId}.
func (c *Client) DeleteProduct(ctx context.Context, token, productID string) error {
	body := map[string]string{"produtoId": productID}
	return c.do(ctx, "DeleteProduct", http.MethodDelete, "/api/produtos", token, body, nil)
}

package backend

import (
	"context"
	"net/http"
	"net/url"

	"shoponline_web/internal/models"
)

// GetCart : GET /api/carrinho?usuarioId=. Un 404 signifie un panier vide.
func (c *Client) GetCart(ctx context.Context, token, userID string) (models.RemoteCart, error) {
	var rc models.RemoteCart
	path := query("/api/carrinho", url.Values{"usuarioId": {userID}})
	if err := c.do(ctx, "GetCart", http.MethodGet, path, token, nil, &rc); err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return models.RemoteCart{}, nil
		}
		return models.RemoteCart{}, err
	}
	return rc, nil
}

// AddToCart : POST /api/carrinho.
func (c *Client) AddToCart(ctx context.Context, token, userID, productID string, quantity int) error {
	body := models.CartLineRequest{UserID: userID, ProductID: productID, Quantity: quantity}
	return c.do(ctx, "AddToCart", http.MethodPost, "/api/carrinho", token, body, nil)
}

// UpdateCartLine : PUT /api/carrinho.
func (c *Client) UpdateCartLine(ctx context.Context, token, userID, productID string, quantity int) error {
	body := models.CartLineRequest{UserID: userID, ProductID: productID, Quantity: quantity}
	return c.do(ctx, "UpdateCartLine", http.MethodPut, "/api/carrinho", token, body, nil)
}

// RemoveCartLine : DELETE /api/carrinho/item.
func (c *Client) RemoveCartLine(ctx context.Context, token, userID, productID string) error {
	body := models.CartLineRequest{UserID: userID, ProductID: productID}
	return c.do(ctx, "RemoveCartLine", http.MethodDelete, "/api/carrinho/item", token, body, nil)
}

// ClearCart : DELETE /api/carrinho.
func (c *Client) ClearCart(ctx context.Context, token, userID string) error {
	body := models.CartLineRequest{UserID: userID}
	return c.do(ctx, "ClearCart", http.MethodDelete, "/api/carrinho", token, body, nil)
}

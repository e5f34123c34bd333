package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoponline_web/internal/cart"
	"shoponline_web/internal/middleware"
	"shoponline_web/internal/models"
)

// 🏠 GET /
func (h *Handler) Home(c *gin.Context) {
	auth := middleware.AuthFrom(c)
	t := middleware.TranslatorFrom(c)
	query := strings.TrimSpace(c.Query("q"))

	data := gin.H{"Query": query}
	products, err := h.api.ListProducts(c.Request.Context(), auth.Token)
	if err != nil {
		h.log.Error("❌ erreur chargement produits", zap.Error(err))
		data["Error"] = t.T("error.products.load")
		data["Products"] = []models.Product{}
		h.render(c, failureStatus(err), "home.html", data)
		return
	}

	data["Products"] = filterProducts(products, query)
	h.render(c, http.StatusOK, "home.html", data)
}

// filterProducts garde les produits dont le nom ou la description contient
// query, sans tenir compte de la casse.
func filterProducts(products []models.Product, query string) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			out = append(out, p)
		}
	}
	return out
}

// 🛒 POST /cart/add
func (h *Handler) AddToCart(c *gin.Context) {
	auth := middleware.AuthFrom(c)
	t := middleware.TranslatorFrom(c)
	productID := strings.TrimSpace(c.PostForm("productId"))

	back := "/"
	if q := strings.TrimSpace(c.PostForm("q")); q != "" {
		back = "/?q=" + url.QueryEscape(q)
	}

	if productID == "" {
		h.sessions.Error(c.Request, t.T("error.cart.add"))
		h.redirect(c, back)
		return
	}

	ctx := c.Request.Context()
	if err := h.api.AddToCart(ctx, auth.Token, auth.UserID, productID, 1); err != nil {
		if isUnauthorized(err) {
			h.expire(c)
			return
		}
		h.log.Warn("❌ ajout au panier refusé",
			zap.String("user_id", auth.UserID),
			zap.String("product_id", productID),
			zap.Error(err),
		)
		h.sessions.Error(c.Request, t.T("error.cart.add"))
		h.redirect(c, back)
		return
	}

	h.log.Info("✅ produit ajouté au panier",
		zap.String("user_id", auth.UserID),
		zap.String("product_id", productID),
	)

	// Rechargement complet pour que l'en-tête affiche le bon nombre d'articles.
	if rc, err := h.api.GetCart(ctx, auth.Token, auth.UserID); err == nil {
		h.carts.Put(h.sessions.ID(c.Request), cart.FromRemote(rc))
	} else {
		h.log.Warn("⚠️ panier non rechargé après ajout", zap.Error(err))
	}

	h.sessions.Success(c.Request, t.T("cart.add.success"))
	h.redirect(c, back)
}

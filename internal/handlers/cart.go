package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoponline_web/internal/cart"
	"shoponline_web/internal/i18n"
	"shoponline_web/internal/middleware"
)

// cartView est ce que cart.html affiche.
type cartView struct {
	Lines     []cart.Line
	Total     string
	Count     int
	UpdatedAt string
}

func (h *Handler) view(c *gin.Context, local *cart.Cart) *cartView {
	if local == nil {
		return nil
	}
	return &cartView{
		Lines: local.Lines(),
		Total: middleware.TranslatorFrom(c).Price(local.Total()),
		Count: local.Count(),
	}
}

func updatedAt(t i18n.Translator, at time.Time) string {
	return t.T("cart.updatedAt", at.Local().Format("02/01/2006 15:04"))
}

// 🛒 GET /cart : rechargement complet, remplace le panier local.
func (h *Handler) Cart(c *gin.Context) {
	auth := middleware.AuthFrom(c)
	t := middleware.TranslatorFrom(c)
	sid := h.sessions.ID(c.Request)

	rc, err := h.api.GetCart(c.Request.Context(), auth.Token, auth.UserID)
	if err != nil {
		if isUnauthorized(err) {
			h.expire(c)
			return
		}
		h.log.Error("❌ erreur chargement panier", zap.String("user_id", auth.UserID), zap.Error(err))
		h.render(c, failureStatus(err), "cart.html", gin.H{
			"Cart":  h.view(c, h.carts.Get(sid)),
			"Error": t.T("error.cart.load"),
		})
		return
	}

	local := cart.FromRemote(rc)
	h.carts.Put(sid, local)

	v := h.view(c, local)
	if rc.UpdatedAt != nil {
		v.UpdatedAt = updatedAt(t, *rc.UpdatedAt)
	}
	h.render(c, http.StatusOK, "cart.html", gin.H{"Cart": v})
}

// edit synchronise une modification avec le backend puis, seulement en cas
// de succès, l'applique au panier local. La page est rendue depuis l'état
// local, sans nouveau chargement. Si apply renvoie false, le panier local ne
// correspond plus au backend et on recharge /cart.
func (h *Handler) edit(c *gin.Context, errKey string, sync func() error, apply func(*cart.Cart) bool) {
	auth := middleware.AuthFrom(c)
	t := middleware.TranslatorFrom(c)
	sid := h.sessions.ID(c.Request)

	if err := sync(); err != nil {
		if isUnauthorized(err) {
			h.expire(c)
			return
		}
		h.log.Warn("❌ synchronisation panier refusée",
			zap.String("user_id", auth.UserID),
			zap.String("product_id", c.Param("productId")),
			zap.Error(err),
		)
		h.renderCartError(c, failureStatus(err), sid, t.T(errKey))
		return
	}

	local := h.carts.Get(sid)
	if local == nil {
		// Panier local expiré : on repart d'un chargement complet.
		h.redirect(c, "/cart")
		return
	}
	if !apply(local) {
		h.log.Info("🔄 panier local désynchronisé, rechargement",
			zap.String("user_id", auth.UserID),
			zap.String("product_id", c.Param("productId")),
		)
		h.redirect(c, "/cart")
		return
	}

	v := h.view(c, local)
	v.UpdatedAt = updatedAt(t, time.Now())
	h.render(c, http.StatusOK, "cart.html", gin.H{"Cart": v})
}

func (h *Handler) renderCartError(c *gin.Context, status int, sid, msg string) {
	local := h.carts.Get(sid)
	if local == nil {
		h.sessions.Error(c.Request, msg)
		h.redirect(c, "/cart")
		return
	}
	h.render(c, status, "cart.html", gin.H{"Cart": h.view(c, local), "Error": msg})
}

// parseQuantity n'accepte que des entiers >= 0.
func parseQuantity(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// 🔢 POST /cart/items/:productId/quantity
func (h *Handler) UpdateQuantity(c *gin.Context) {
	auth := middleware.AuthFrom(c)
	productID := c.Param("productId")

	n, ok := parseQuantity(c.PostForm("quantity"))
	if !ok {
		h.renderCartError(c, http.StatusBadRequest, h.sessions.ID(c.Request),
			middleware.TranslatorFrom(c).T("error.cart.quantity"))
		return
	}

	ctx := c.Request.Context()
	h.edit(c, "error.cart.update",
		func() error {
			if n == 0 {
				return h.api.RemoveCartLine(ctx, auth.Token, auth.UserID, productID)
			}
			return h.api.UpdateCartLine(ctx, auth.Token, auth.UserID, productID, n)
		},
		// une ligne absente du panier local ne peut qu'être retirée
		func(local *cart.Cart) bool { return local.SetQuantity(productID, n) || n == 0 },
	)
}

// ❌ POST /cart/items/:productId/remove
func (h *Handler) RemoveItem(c *gin.Context) {
	auth := middleware.AuthFrom(c)
	productID := c.Param("productId")
	ctx := c.Request.Context()

	h.edit(c, "error.cart.remove",
		func() error { return h.api.RemoveCartLine(ctx, auth.Token, auth.UserID, productID) },
		func(local *cart.Cart) bool {
			local.RemoveLine(productID)
			return true
		},
	)
}

// 🧹 POST /cart/clear
func (h *Handler) ClearCart(c *gin.Context) {
	auth := middleware.AuthFrom(c)
	ctx := c.Request.Context()

	h.edit(c, "error.cart.clear",
		func() error { return h.api.ClearCart(ctx, auth.Token, auth.UserID) },
		func(local *cart.Cart) bool {
			local.Clear()
			return true
		},
	)
}

// 💳 POST /cart/checkout : pas encore de paiement, on l'annonce seulement.
func (h *Handler) Checkout(c *gin.Context) {
	h.sessions.Success(c.Request, middleware.TranslatorFrom(c).T("cart.checkoutSoon"))
	h.redirect(c, "/cart")
}

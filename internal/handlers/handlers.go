// Package handlers rend les pages de la vitrine. Chaque page interroge le
// backend REST puis rend un template ; aucune erreur du backend n'est fatale.
package handlers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoponline_web/internal/backend"
	"shoponline_web/internal/cart"
	"shoponline_web/internal/middleware"
	"shoponline_web/internal/models"
	"shoponline_web/internal/session"
)

// Backend regroupe les appels REST utilisés par les pages ; *backend.Client le satisfait.
type Backend interface {
	ListProducts(ctx context.Context, token string) ([]models.Product, error)
	CreateProduct(ctx context.Context, token string, p models.Product) error
	UpdateProduct(ctx context.Context, token string, p models.Product) error
	DeleteProduct(ctx context.Context, token, productID string) error

	CreateUser(ctx context.Context, r models.Registration) error
	Authenticate(ctx context.Context, creds models.Credentials) (models.LoginResult, error)

	GetCart(ctx context.Context, token, userID string) (models.RemoteCart, error)
	AddToCart(ctx context.Context, token, userID, productID string, quantity int) error
	UpdateCartLine(ctx context.Context, token, userID, productID string, quantity int) error
	RemoveCartLine(ctx context.Context, token, userID, productID string) error
	ClearCart(ctx context.Context, token, userID string) error
}

type Handler struct {
	api      Backend
	sessions *session.Manager
	carts    *cart.Registry
	log      *zap.Logger
}

func New(api Backend, sessions *session.Manager, carts *cart.Registry, log *zap.Logger) *Handler {
	return &Handler{api: api, sessions: sessions, carts: carts, log: log}
}

// render complète data avec ce dont le gabarit commun a besoin (langue,
// utilisateur, flashs, nombre de lignes du panier) puis enregistre la session,
// puisque la lecture des flashs la modifie.
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["L"] = middleware.TranslatorFrom(c)
	data["Auth"] = middleware.AuthFrom(c)
	data["Flash"] = h.sessions.Flashes(c.Request)
	data["CartCount"] = h.cartCount(c)
	data["Path"] = c.Request.URL.Path

	if err := h.sessions.Save(c.Writer, c.Request); err != nil {
		h.log.Warn("⚠️ sauvegarde session impossible", zap.Error(err))
	}
	c.HTML(status, name, data)
}

// redirect enregistre la session (flashs compris) puis redirige en 303.
func (h *Handler) redirect(c *gin.Context, location string) {
	if err := h.sessions.Save(c.Writer, c.Request); err != nil {
		h.log.Warn("⚠️ sauvegarde session impossible", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, location)
}

func (h *Handler) cartCount(c *gin.Context) int {
	sid := h.sessions.PeekID(c.Request)
	if sid == "" {
		return 0
	}
	if local := h.carts.Get(sid); local != nil {
		return local.Len()
	}
	return 0
}

// ForgetCart libère le panier local d'une session terminée.
func (h *Handler) ForgetCart(sid string) {
	h.carts.Forget(sid)
}

// expire déconnecte l'utilisateur dont le jeton a été refusé par le backend.
func (h *Handler) expire(c *gin.Context) {
	auth := middleware.AuthFrom(c)
	h.log.Info("⏰ jeton refusé par le backend, déconnexion", zap.String("user_id", auth.UserID))
	h.ForgetCart(h.sessions.ClearAuth(c.Request))
	h.sessions.Error(c.Request, middleware.TranslatorFrom(c).T("session.expired"))
	h.redirect(c, "/login")
}

// ErrorPage affiche la page d'erreur générique.
func (h *Handler) ErrorPage(c *gin.Context, status int, message string) {
	h.render(c, status, "error.html", gin.H{"Status": status, "Message": message})
}

// LimitedPage affiche le refus d'un limiteur, arrondi à la minute supérieure.
func (h *Handler) LimitedPage(c *gin.Context, retryAfter time.Duration) {
	minutes := int(math.Ceil(retryAfter.Minutes()))
	if minutes < 1 {
		minutes = 1
	}
	h.ErrorPage(c, http.StatusTooManyRequests, middleware.TranslatorFrom(c).T("error.rateLimited", minutes))
}

func (h *Handler) NotFound(c *gin.Context) {
	h.ErrorPage(c, http.StatusNotFound, middleware.TranslatorFrom(c).T("error.notFound"))
}

// failureStatus traduit une erreur backend en statut de la page rendue :
// 400 si le backend a refusé la requête, 502 sinon.
func failureStatus(err error) int {
	var be *backend.Error
	if errors.As(err, &be) && be.Kind == backend.KindStatus && be.Status >= 400 && be.Status < 500 {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

// isUnauthorized : le backend a refusé le jeton.
func isUnauthorized(err error) bool {
	return backend.IsStatus(err, http.StatusUnauthorized)
}

package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoponline_web/internal/config"
	"shoponline_web/internal/handlers"
	"shoponline_web/internal/i18n"
	"shoponline_web/internal/middleware"
	"shoponline_web/internal/session"
	"shoponline_web/internal/web"
)

// Deps regroupe ce dont le routeur a besoin ; tout est construit par cmd/server.
type Deps struct {
	Config   config.Config
	Log      *zap.Logger
	Sessions *session.Manager
	Limiter  *middleware.RateLimiter
	Handlers *handlers.Handler
}

// NewRouter construit le moteur gin : middlewares communs, gabarits, routes.
func NewRouter(d Deps) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("chargement des gabarits: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(
		middleware.Recovery(d.Log),
		middleware.RequestID(),
		middleware.AccessLog(d.Log),
		middleware.CORS(d.Config.CORSOrigins),
		middleware.Locale(i18n.Parse(d.Config.DefaultLocale)),
		middleware.LoadAuth(d.Sessions),
	)

	RegisterRoutes(r, d)
	return r, nil
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	h := d.Handlers

	r.GET("/healthz", h.Health)
	r.NoRoute(h.NotFound)

	// Pages publiques
	r.GET("/", h.Home)
	r.GET("/login", h.LoginPage)
	r.POST("/login", d.Limiter.Login(), h.Login)
	r.GET("/register", h.RegisterPage)
	r.POST("/register", d.Limiter.Register(), h.Register)
	r.POST("/logout", h.Logout)

	// Ajout au panier depuis la liste des produits
	r.POST("/cart/add",
		middleware.RequireLogin(d.Sessions, d.Log, "cart.add.loginRequired", h.ForgetCart),
		d.Limiter.CartAdd(),
		h.AddToCart,
	)

	// Panier
	cart := r.Group("/cart")
	cart.Use(middleware.RequireLogin(d.Sessions, d.Log, "cart.loginRequired", h.ForgetCart))
	{
		cart.GET("", h.Cart)
		cart.POST("/items/:productId/quantity", h.UpdateQuantity)
		cart.POST("/items/:productId/remove", h.RemoveItem)
		cart.POST("/clear", h.ClearCart)
		cart.POST("/checkout", h.Checkout)
	}

	// Administration des produits
	admin := r.Group("/admin")
	admin.Use(
		middleware.RequireLogin(d.Sessions, d.Log, "auth.loginRequired", h.ForgetCart),
		middleware.RequireRole(d.Config.AdminRole, h.ErrorPage),
	)
	{
		admin.GET("/products", h.AdminProducts)
		admin.POST("/products", h.SaveProduct)
		admin.POST("/products/:id/delete", h.DeleteProduct)
	}
}

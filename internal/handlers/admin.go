package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"shoponline_web/internal/backend"
	"shoponline_web/internal/middleware"
	"shoponline_web/internal/models"
)

// productForm reprend les champs du formulaire d'administration.
// Une quantité nulle compte comme absente (champ obligatoire).
type productForm struct {
	ID          string `form:"produtoId"`
	Name        string `form:"nome" binding:"required"`
	Description string `form:"descricao" binding:"required"`
	Price       string `form:"preco" binding:"required"`
	Stock       int    `form:"quantidade" binding:"required,gte=0"`
	ImageURL    string `form:"imagem" binding:"omitempty,url"`
}

func formFromProduct(p models.Product) productForm {
	return productForm{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
	}
}

// product valide le formulaire et renvoie la clé du message d'erreur.
func (f productForm) product(bindErr error) (models.Product, string) {
	if bindErr != nil {
		var verrs validator.ValidationErrors
		if !errors.As(bindErr, &verrs) {
			return models.Product{}, "error.admin.invalid"
		}
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return models.Product{}, "error.admin.fields"
			}
		}
		return models.Product{}, "error.admin.invalid"
	}
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Description) == "" {
		return models.Product{}, "error.admin.fields"
	}

	price, err := decimal.NewFromString(strings.TrimSpace(strings.Replace(f.Price, ",", ".", 1)))
	if err != nil || price.IsNegative() {
		return models.Product{}, "error.admin.invalid"
	}
	if price.IsZero() {
		return models.Product{}, "error.admin.fields"
	}

	return models.Product{
		ID:          strings.TrimSpace(f.ID),
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		Price:       price,
		Stock:       f.Stock,
		ImageURL:    strings.TrimSpace(f.ImageURL),
	}, ""
}

// renderAdmin recharge la liste des produits et rend la page d'administration.
func (h *Handler) renderAdmin(c *gin.Context, status int, form productForm, errMsg string) {
	auth := middleware.AuthFrom(c)
	t := middleware.TranslatorFrom(c)

	data := gin.H{"Form": form, "Editing": form.ID != "", "Error": errMsg}
	products, err := h.api.ListProducts(c.Request.Context(), auth.Token)
	if err != nil {
		h.log.Error("❌ erreur chargement produits (admin)", zap.Error(err))
		products = []models.Product{}
		if errMsg == "" {
			data["Error"] = t.T("error.admin.load")
			status = failureStatus(err)
		}
	}
	data["Products"] = products
	h.render(c, status, "admin_products.html", data)
}

// 🛠️ GET /admin/products[?edit=<id>]
func (h *Handler) AdminProducts(c *gin.Context) {
	auth := middleware.AuthFrom(c)
	t := middleware.TranslatorFrom(c)

	products, err := h.api.ListProducts(c.Request.Context(), auth.Token)
	if err != nil {
		h.log.Error("❌ erreur chargement produits (admin)", zap.Error(err))
		h.render(c, failureStatus(err), "admin_products.html", gin.H{
			"Products": []models.Product{},
			"Form":     productForm{},
			"Error":    t.T("error.admin.load"),
		})
		return
	}

	form := productForm{}
	if id := c.Query("edit"); id != "" {
		for _, p := range products {
			if p.ID == id {
				form = formFromProduct(p)
				break
			}
		}
	}

	h.render(c, http.StatusOK, "admin_products.html", gin.H{
		"Products": products,
		"Form":     form,
		"Editing":  form.ID != "",
	})
}

// 💾 POST /admin/products : création, ou mise à jour si produtoId est fourni.
func (h *Handler) SaveProduct(c *gin.Context) {
	auth := middleware.AuthFrom(c)
	t := middleware.TranslatorFrom(c)

	var form productForm
	bindErr := c.ShouldBind(&form)
	p, errKey := form.product(bindErr)
	if errKey != "" {
		h.renderAdmin(c, http.StatusBadRequest, form, t.T(errKey))
		return
	}

	ctx := c.Request.Context()
	if p.ID != "" {
		if err := h.api.UpdateProduct(ctx, auth.Token, p); err != nil {
			h.productFailure(c, form, err, "error.admin.update")
			return
		}
		h.log.Info("✅ produit mis à jour", zap.String("product_id", p.ID), zap.String("user_id", auth.UserID))
		h.sessions.Success(c.Request, t.T("admin.updated"))
	} else {
		if err := h.api.CreateProduct(ctx, auth.Token, p); err != nil {
			h.productFailure(c, form, err, "error.admin.create")
			return
		}
		h.log.Info("✅ produit créé", zap.String("name", p.Name), zap.String("user_id", auth.UserID))
		h.sessions.Success(c.Request, t.T("admin.created"))
	}
	h.redirect(c, "/admin/products")
}

func (h *Handler) productFailure(c *gin.Context, form productForm, err error, key string) {
	if isUnauthorized(err) {
		h.expire(c)
		return
	}
	h.log.Warn("❌ opération produit refusée", zap.String("product_id", form.ID), zap.Error(err))
	msg := backend.ServerMessage(err)
	if msg == "" {
		msg = middleware.TranslatorFrom(c).T(key)
	}
	h.renderAdmin(c, failureStatus(err), form, msg)
}

// 🗑️ POST /admin/products/:id/delete
func (h *Handler) DeleteProduct(c *gin.Context) {
	auth := middleware.AuthFrom(c)
	t := middleware.TranslatorFrom(c)
	id := c.Param("id")

	if err := h.api.DeleteProduct(c.Request.Context(), auth.Token, id); err != nil {
		if isUnauthorized(err) {
			h.expire(c)
			return
		}
		h.log.Warn("❌ suppression produit refusée", zap.String("product_id", id), zap.Error(err))
		h.sessions.Error(c.Request, t.T("error.admin.delete"))
		h.redirect(c, "/admin/products")
		return
	}

	h.log.Info("🗑️ produit supprimé", zap.String("product_id", id), zap.String("user_id", auth.UserID))
	h.sessions.Success(c.Request, t.T("admin.deleted"))
	h.redirect(c, "/admin/products")
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole vérifie le rôle lu dans le jeton. Un rôle vide laisse passer
// tout utilisateur connecté.
func RequireRole(role string, page ErrorPage) gin.HandlerFunc {
	return func(c *gin.Context) {
		if role == "" || AuthFrom(c).Role == role {
			c.Next()
			return
		}
		page(c, http.StatusForbidden, TranslatorFrom(c).T("error.forbidden"))
		c.Abort()
	}
}

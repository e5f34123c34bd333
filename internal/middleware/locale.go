package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"shoponline_web/internal/i18n"
)

const ctxTranslator = "i18n"

// Locale choisit la langue des messages d'après Accept-Language.
func Locale(fallback language.Tag) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxTranslator, i18n.Negotiate(c.GetHeader("Accept-Language"), fallback))
		c.Next()
	}
}

// TranslatorFrom renvoie le traducteur de la requête (portugais par défaut).
func TranslatorFrom(c *gin.Context) i18n.Translator {
	if v, ok := c.Get(ctxTranslator); ok {
		if t, ok := v.(i18n.Translator); ok {
			return t
		}
	}
	return i18n.New(i18n.Supported[0])
}

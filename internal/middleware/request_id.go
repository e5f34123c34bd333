package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shoponline_web/internal/backend"
)

const (
	HeaderRequestID = "X-Request-ID"
	ctxRequestID    = "request_id"
)

// RequestID reprend l'en-tête X-Request-ID ou en génère un, et le place dans
// le contexte de la requête pour qu'il suive les appels au backend.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(backend.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

func RequestIDFrom(c *gin.Context) string {
	return c.GetString(ctxRequestID)
}

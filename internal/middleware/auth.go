package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoponline_web/internal/session"
)

const ctxAuth = "auth"

// ErrorPage affiche une page d'erreur ; fournie par les handlers.
type ErrorPage func(c *gin.Context, status int, message string)

// LoadAuth place l'état de connexion de la session dans le contexte gin.
func LoadAuth(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxAuth, sm.Auth(c.Request))
		c.Next()
	}
}

func AuthFrom(c *gin.Context) session.Auth {
	if v, ok := c.Get(ctxAuth); ok {
		if a, ok := v.(session.Auth); ok {
			return a
		}
	}
	return session.Auth{}
}

// RequireLogin redirige vers /login si l'utilisateur n'est pas connecté
// ou si son jeton a expiré ; messageKey est le message affiché sur la page de connexion.
// forget reçoit l'identifiant de la session déconnectée pour libérer son panier.
func RequireLogin(sm *session.Manager, log *zap.Logger, messageKey string, forget func(sid string)) gin.HandlerFunc {
	return func(c *gin.Context) {
		a := AuthFrom(c)
		t := TranslatorFrom(c)

		switch {
		case !a.LoggedIn():
			sm.Error(c.Request, t.T(messageKey))
		case a.Expired(time.Now()):
			log.Info("⏰ jeton expiré, déconnexion", zap.String("user_id", a.UserID))
			if sid := sm.ClearAuth(c.Request); sid != "" && forget != nil {
				forget(sid)
			}
			sm.Error(c.Request, t.T("session.expired"))
		default:
			c.Next()
			return
		}

		if err := sm.Save(c.Writer, c.Request); err != nil {
			log.Warn("⚠️ sauvegarde session impossible", zap.Error(err))
		}
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
	}
}

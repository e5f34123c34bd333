package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims reprend les champs que l'API met dans ses JWT.
type Claims struct {
	UserID    string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// ReadClaims lit les claims d'un jeton sans vérifier la signature : la
// vitrine ne possède pas le secret, seul le backend fait foi. Les valeurs
// servent uniquement à l'affichage et à anticiper l'expiration.
// ok est faux si le jeton n'est pas un JWT.
func ReadClaims(token string) (Claims, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Claims{}, false
	}

	var c Claims
	c.UserID, _ = claims["user_id"].(string)
	c.Email, _ = claims["email"].(string)
	c.Role, _ = claims["role"].(string)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, true
}

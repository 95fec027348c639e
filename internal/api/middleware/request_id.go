package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMaxLen borne la longueur d'un Request-ID externe (anti-injection
// dans les journaux)
const requestIDMaxLen = 64

// RequestID identifiant de suivi de requête
// Lu depuis l'en-tête X-Request-ID, généré sinon ; réinjecté dans le
// contexte et dans l'en-tête de réponse.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}

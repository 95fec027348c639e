package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gestion-notes/pkg/redis"
	"gestion-notes/pkg/response"
)

// RateLimit limitation de débit par IP et par route, adossée à Redis
// limit: requêtes autorisées par fenêtre ; window: durée de la fenêtre
// rdb nil ou en erreur → mode dégradé, la requête passe
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, "Trop de requêtes, réessayez plus tard")
			c.Abort()
			return
		}

		c.Next()
	}
}

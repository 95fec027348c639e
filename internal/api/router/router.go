package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gestion-notes/config"
	"gestion-notes/internal/api/handler"
	"gestion-notes/internal/api/middleware"
	"gestion-notes/pkg/redis"
	"gestion-notes/pkg/response"
)

// Setup construit le moteur Gin et la table de routage
func Setup(cfg *config.Config, h *handler.Handler, db *gorm.DB, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Middlewares globaux ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.RateLimit(rdb, cfg.Service.RateLimit,
		time.Duration(cfg.Service.RateLimitWindow)*time.Second))

	// ── Page d'accueil statique ──
	r.StaticFile("/", "./web/index.html")

	// ── État de santé ──
	r.GET("/health", healthHandler(db, rdb))

	// ── API ──
	api := r.Group("/api")
	{
		etudiants := api.Group("/etudiants")
		{
			etudiants.POST("", h.Etudiant.CreateEtudiant)
			etudiants.GET("", h.Etudiant.ListEtudiants)
			etudiants.GET("/:id", h.Etudiant.GetEtudiant)
			etudiants.DELETE("/:id", h.Etudiant.DeleteEtudiant)
		}

		notes := api.Group("/notes")
		{
			notes.POST("", h.Note.CreateNote)
			notes.GET("", h.Note.ListNotes)
			notes.DELETE("/:id", h.Note.DeleteNote)
		}

		export := api.Group("/export")
		{
			export.GET("/etudiant/:id", h.Export.ExportEtudiant)
			export.GET("/etudiants", h.Export.ExportEtudiants)
		}
	}

	// ── Route inconnue ──
	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route non trouvée")
	})

	return r
}

// healthHandler état du service : base de données obligatoire, cache
// facultatif. Un échec du ping de la base répond 500.
func healthHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{
			"status":    "ok",
			"database":  "ok",
			"cache":     "absent",
			"timestamp": time.Now().Format(time.RFC3339),
		}

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			body["status"] = "erreur"
			body["database"] = "indisponible"
			c.JSON(http.StatusInternalServerError, body)
			return
		}

		if rdb != nil {
			body["cache"] = "ok"
			if err := rdb.Ping(c.Request.Context()); err != nil {
				body["cache"] = "indisponible"
			}
		}

		c.JSON(http.StatusOK, body)
	}
}

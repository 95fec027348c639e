package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"gestion-notes/internal/service"
	"gestion-notes/pkg/response"
)

// Handler point d'entrée agrégé de tous les Handler
type Handler struct {
	Etudiant *EtudiantHandler
	Note     *NoteHandler
	Export   *ExportHandler
}

// NewHandler crée l'agrégat Handler
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Etudiant: NewEtudiantHandler(svc.Etudiant),
		Note:     NewNoteHandler(svc.Note),
		Export:   NewExportHandler(svc.Export),
	}
}

// parseID lit le paramètre :id ; tout identifiant non numérique ou non
// strictement positif est rejeté en 400 avant le moindre accès au stockage.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "ID invalide")
		return 0, false
	}
	return uint(id), true
}

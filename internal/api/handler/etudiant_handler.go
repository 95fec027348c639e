package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gestion-notes/internal/dto"
	"gestion-notes/internal/service"
	"gestion-notes/pkg/response"
)

// EtudiantHandler HTTP du module étudiants
type EtudiantHandler struct {
	etudiantSvc service.EtudiantService
}

// NewEtudiantHandler crée un EtudiantHandler
func NewEtudiantHandler(etudiantSvc service.EtudiantService) *EtudiantHandler {
	return &EtudiantHandler{etudiantSvc: etudiantSvc}
}

// CreateEtudiant crée un étudiant
// POST /api/etudiants
func (h *EtudiantHandler) CreateEtudiant(c *gin.Context) {
	var req dto.CreateEtudiantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requête invalide")
		return
	}

	etudiant, err := h.etudiantSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleEtudiantError(c, err)
		return
	}

	response.Created(c, gin.H{"etudiant": etudiant})
}

// ListEtudiants liste tous les étudiants avec leurs statistiques
// GET /api/etudiants
func (h *EtudiantHandler) ListEtudiants(c *gin.Context) {
	etudiants, err := h.etudiantSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	// Tableau nu, conformément au contrat de l'API
	c.JSON(http.StatusOK, etudiants)
}

// GetEtudiant fiche d'un étudiant avec ses notes (récentes d'abord)
// GET /api/etudiants/:id
func (h *EtudiantHandler) GetEtudiant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.etudiantSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleEtudiantError(c, err)
		return
	}

	response.OK(c, gin.H{"etudiant": detail.Etudiant, "notes": detail.Notes})
}

// DeleteEtudiant supprime un étudiant et, en cascade, ses notes
// DELETE /api/etudiants/:id
func (h *EtudiantHandler) DeleteEtudiant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.etudiantSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleEtudiantError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "Étudiant supprimé"})
}

// handleEtudiantError traduction des erreurs métier du module étudiants
func (h *EtudiantHandler) handleEtudiantError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		response.BadRequest(c, vErr.Message)
	case errors.Is(err, service.ErrMatriculeExiste):
		response.BadRequest(c, "Un étudiant avec ce matricule existe déjà")
	case errors.Is(err, service.ErrEtudiantNotFound):
		response.NotFound(c, "Étudiant non trouvé")
	default:
		response.InternalError(c)
	}
}

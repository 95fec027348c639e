package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gestion-notes/internal/dto"
	"gestion-notes/internal/service"
	"gestion-notes/pkg/response"
)

// NoteHandler HTTP du module notes
type NoteHandler struct {
	noteSvc service.NoteService
}

// NewNoteHandler crée un NoteHandler
func NewNoteHandler(noteSvc service.NoteService) *NoteHandler {
	return &NoteHandler{noteSvc: noteSvc}
}

// CreateNote ajoute une note à un étudiant
// POST /api/notes
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requête invalide")
		return
	}

	note, err := h.noteSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleNoteError(c, err)
		return
	}

	response.Created(c, gin.H{"note": note})
}

// ListNotes liste toutes les notes jointes à leur étudiant
// GET /api/notes
func (h *NoteHandler) ListNotes(c *gin.Context) {
	notes, err := h.noteSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, notes)
}

// DeleteNote supprime une note
// DELETE /api/notes/:id
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.noteSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleNoteError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "Note supprimée"})
}

// handleNoteError traduction des erreurs métier du module notes
func (h *NoteHandler) handleNoteError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		response.BadRequest(c, vErr.Message)
	case errors.Is(err, service.ErrEtudiantNotFound):
		response.NotFound(c, "Étudiant non trouvé")
	case errors.Is(err, service.ErrNoteNotFound):
		response.NotFound(c, "Note non trouvée")
	default:
		response.InternalError(c)
	}
}

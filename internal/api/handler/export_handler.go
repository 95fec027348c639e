package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"gestion-notes/internal/service"
	"gestion-notes/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler HTTP du module export
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler crée un ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportEtudiant export JSON d'un étudiant, notes triées par matière
// GET /api/export/etudiant/:id
func (h *ExportHandler) ExportEtudiant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.exportSvc.ExportEtudiant(c.Request.Context(), id)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	response.OK(c, gin.H{"etudiant": detail.Etudiant, "notes": detail.Notes})
}

// ExportEtudiants export Excel de la liste des étudiants
// GET /api/export/etudiants
func (h *ExportHandler) ExportEtudiants(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportEtudiantsExcel(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// handleExportError traduction des erreurs métier du module export
func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEtudiantNotFound):
		response.NotFound(c, "Étudiant non trouvé")
	default:
		response.InternalError(c)
	}
}

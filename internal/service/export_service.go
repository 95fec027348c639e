package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gestion-notes/internal/dto"
	"gestion-notes/internal/repository"
)

// ExportService assemblage des exports
//
// Deux formats :
//   - export JSON d'un étudiant avec ses notes triées par matière
//     (ordre volontairement distinct de la fiche étudiant, qui trie par
//     date décroissante)
//   - export Excel (.xlsx) de la liste des étudiants avec leurs moyennes,
//     retourné en bytes.Buffer ; le Handler pose les en-têtes de
//     téléchargement
type ExportService interface {
	ExportEtudiant(ctx context.Context, id uint) (*dto.EtudiantDetailResponse, error)
	ExportEtudiantsExcel(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService crée une instance de ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ────────────────────── ExportEtudiant ──────────────────────

func (s *exportService) ExportEtudiant(ctx context.Context, id uint) (*dto.EtudiantDetailResponse, error) {
	etudiant, err := s.repo.Etudiant.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrEtudiantNotFound
		}
		s.logger.Error("lecture de l'étudiant pour export", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	notes, err := s.repo.Note.ListByEtudiantParMatiere(ctx, id)
	if err != nil {
		s.logger.Error("lecture des notes pour export", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return &dto.EtudiantDetailResponse{
		Etudiant: toEtudiantResponse(etudiant),
		Notes:    toNoteResponses(notes),
	}, nil
}

// ────────────────────── ExportEtudiantsExcel ──────────────────────

func (s *exportService) ExportEtudiantsExcel(ctx context.Context) (*bytes.Buffer, string, error) {
	rows, err := s.repo.Etudiant.ListAvecStats(ctx)
	if err != nil {
		s.logger.Error("liste des étudiants pour export Excel", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Étudiants"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Nom", "Prénom", "Classe", "Matricule", "Nombre de notes", "Moyenne"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i := range rows {
		r := &rows[i]
		values := []interface{}{r.ID, r.Nom, r.Prenom, r.Classe, "", r.NombreNotes, ""}
		if r.Matricule != nil {
			values[4] = *r.Matricule
		}
		if r.Moyenne != nil {
			values[6] = *r.Moyenne
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("génération du fichier Excel", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("etudiants_%s.xlsx", time.Now().Format(dateFormat))
	return buf, filename, nil
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"gestion-notes/internal/dto"
	"gestion-notes/internal/model"
	"gestion-notes/internal/repository"
)

// ── Erreurs métier du module notes ──

var ErrNoteNotFound = errors.New("note non trouvée")

// Bornes des champs numériques d'une note
const (
	NoteMin        = 0
	NoteMax        = 20
	CoefficientMin = 1
	CoefficientMax = 10
)

// NoteService règles métier des notes
type NoteService interface {
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	// List retourne toutes les notes jointes aux champs de l'étudiant
	// propriétaire, les plus récentes d'abord.
	List(ctx context.Context) ([]dto.NoteDetailResponse, error)
	Delete(ctx context.Context, id uint) error
}

type noteService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNoteService crée une instance de NoteService
func NewNoteService(repo *repository.Repository, logger *zap.Logger) NoteService {
	return &noteService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	// Présence vérifiée par pointeur : note = 0 est une valeur légitime
	if req.EtudiantID == nil {
		return nil, validationErr("etudiant_id", "Le champ etudiant_id est obligatoire")
	}
	matiere := strings.TrimSpace(req.Matiere)
	if matiere == "" {
		return nil, validationErr("matiere", "Le champ matiere est obligatoire")
	}
	if req.Note == nil {
		return nil, validationErr("note", "Le champ note est obligatoire")
	}
	if *req.Note < NoteMin || *req.Note > NoteMax {
		return nil, validationErr("note", "La note doit être comprise entre 0 et 20")
	}
	coefficient := CoefficientMin
	if req.Coefficient != nil {
		coefficient = *req.Coefficient
	}
	if coefficient < CoefficientMin || coefficient > CoefficientMax {
		return nil, validationErr("coefficient", "Le coefficient doit être compris entre 1 et 10")
	}

	// Vérification d'existence de l'étudiant avant insertion.
	// Séquence lecture-puis-écriture non transactionnelle : un étudiant
	// supprimé entre les deux requêtes fait échouer l'insertion sur la clé
	// étrangère (500 au lieu de 404). Course connue, fidèle à la conception
	// d'origine.
	if _, err := s.repo.Etudiant.GetByID(ctx, *req.EtudiantID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrEtudiantNotFound
		}
		s.logger.Error("vérification de l'étudiant", zap.Uint("etudiant_id", *req.EtudiantID), zap.Error(err))
		return nil, err
	}

	note := &model.Note{
		EtudiantID:  *req.EtudiantID,
		Matiere:     matiere,
		Valeur:      *req.Note,
		Coefficient: coefficient,
	}

	if err := s.repo.Note.Create(ctx, note); err != nil {
		s.logger.Error("création de la note", zap.Error(err))
		return nil, err
	}

	resp := toNoteResponse(note)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *noteService) List(ctx context.Context) ([]dto.NoteDetailResponse, error) {
	rows, err := s.repo.Note.ListAvecEtudiants(ctx)
	if err != nil {
		s.logger.Error("liste des notes", zap.Error(err))
		return nil, err
	}

	result := make([]dto.NoteDetailResponse, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		item := dto.NoteDetailResponse{
			NoteResponse: dto.NoteResponse{
				ID:          r.ID,
				EtudiantID:  r.EtudiantID,
				Matiere:     r.Matiere,
				Note:        r.Note,
				Coefficient: r.Coefficient,
				DateAjout:   r.DateAjout.Format(time.RFC3339),
			},
			Nom:    r.Nom,
			Prenom: r.Prenom,
			Classe: r.Classe,
		}
		if r.Matricule != nil {
			item.Matricule = *r.Matricule
		}
		result = append(result, item)
	}

	return result, nil
}

// ────────────────────── Delete ──────────────────────

func (s *noteService) Delete(ctx context.Context, id uint) error {
	rows, err := s.repo.Note.Delete(ctx, id)
	if err != nil {
		s.logger.Error("suppression de la note", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if rows == 0 {
		return ErrNoteNotFound
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"gestion-notes/config"
	"gestion-notes/internal/dto"
	"gestion-notes/internal/model"
	"gestion-notes/internal/repository"
)

// ── Erreurs métier du module étudiants ──

var (
	ErrEtudiantNotFound = errors.New("étudiant non trouvé")
	ErrMatriculeExiste  = errors.New("un étudiant avec ce matricule existe déjà")
)

// EtudiantService règles métier des étudiants
type EtudiantService interface {
	Create(ctx context.Context, req *dto.CreateEtudiantRequest) (*dto.EtudiantResponse, error)
	// List retourne tous les étudiants (ordre alphabétique) avec le nombre
	// de notes et la moyenne pondérée de chacun.
	List(ctx context.Context) ([]dto.EtudiantStatsResponse, error)
	// GetByID retourne l'étudiant et ses notes, les plus récentes d'abord.
	GetByID(ctx context.Context, id uint) (*dto.EtudiantDetailResponse, error)
	Delete(ctx context.Context, id uint) error
}

type etudiantService struct {
	repo   *repository.Repository
	logger *zap.Logger
	strict bool
}

// NewEtudiantService crée une instance de EtudiantService
func NewEtudiantService(cfg *config.ServiceConfig, repo *repository.Repository, logger *zap.Logger) EtudiantService {
	return &etudiantService{repo: repo, logger: logger, strict: cfg.Strict}
}

// ────────────────────── Create ──────────────────────

func (s *etudiantService) Create(ctx context.Context, req *dto.CreateEtudiantRequest) (*dto.EtudiantResponse, error) {
	nom := strings.TrimSpace(req.Nom)
	prenom := strings.TrimSpace(req.Prenom)
	matricule := strings.ToUpper(strings.TrimSpace(req.Matricule))

	if nom == "" {
		return nil, validationErr("nom", "Le champ nom est obligatoire")
	}
	if prenom == "" {
		return nil, validationErr("prenom", "Le champ prenom est obligatoire")
	}
	// En mode strict le matricule est obligatoire ; la variante souple
	// accepte son absence. L'unicité s'applique dans les deux cas.
	if s.strict && matricule == "" {
		return nil, validationErr("matricule", "Le champ matricule est obligatoire")
	}

	etudiant := &model.Etudiant{
		Nom:    nom,
		Prenom: prenom,
		Classe: strings.TrimSpace(req.Classe),
	}
	if matricule != "" {
		etudiant.Matricule = &matricule
	}
	if d := strings.TrimSpace(req.DateNaissance); d != "" {
		naissance, err := time.Parse(dateFormat, d)
		if err != nil {
			return nil, validationErr("date_naissance", "La date de naissance doit être au format AAAA-MM-JJ")
		}
		etudiant.DateNaissance = &naissance
	}

	if err := s.repo.Etudiant.Create(ctx, etudiant); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrMatriculeExiste
		}
		s.logger.Error("création de l'étudiant", zap.Error(err))
		return nil, err
	}

	resp := toEtudiantResponse(etudiant)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *etudiantService) List(ctx context.Context) ([]dto.EtudiantStatsResponse, error) {
	rows, err := s.repo.Etudiant.ListAvecStats(ctx)
	if err != nil {
		s.logger.Error("liste des étudiants", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EtudiantStatsResponse, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		item := dto.EtudiantStatsResponse{
			EtudiantResponse: dto.EtudiantResponse{
				ID:              r.ID,
				Nom:             r.Nom,
				Prenom:          r.Prenom,
				Classe:          r.Classe,
				DateInscription: r.DateInscription.Format(time.RFC3339),
			},
			NombreNotes: r.NombreNotes,
			Moyenne:     r.Moyenne,
		}
		if r.DateNaissance != nil {
			d := r.DateNaissance.Format(dateFormat)
			item.DateNaissance = &d
		}
		if r.Matricule != nil {
			item.Matricule = *r.Matricule
		}
		result = append(result, item)
	}

	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *etudiantService) GetByID(ctx context.Context, id uint) (*dto.EtudiantDetailResponse, error) {
	etudiant, err := s.repo.Etudiant.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrEtudiantNotFound
		}
		s.logger.Error("lecture de l'étudiant", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	notes, err := s.repo.Note.ListByEtudiantRecentes(ctx, id)
	if err != nil {
		s.logger.Error("lecture des notes de l'étudiant", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return &dto.EtudiantDetailResponse{
		Etudiant: toEtudiantResponse(etudiant),
		Notes:    toNoteResponses(notes),
	}, nil
}

// ────────────────────── Delete ──────────────────────

func (s *etudiantService) Delete(ctx context.Context, id uint) error {
	rows, err := s.repo.Etudiant.Delete(ctx, id)
	if err != nil {
		s.logger.Error("suppression de l'étudiant", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if rows == 0 {
		return ErrEtudiantNotFound
	}
	// Les notes associées sont supprimées par la cascade de la clé étrangère
	return nil
}

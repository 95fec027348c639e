package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gestion-notes/internal/model"
)

// NoteAvecEtudiant ligne de la liste des notes jointe à l'étudiant
type NoteAvecEtudiant struct {
	ID          uint
	EtudiantID  uint
	Matiere     string
	Note        float64
	Coefficient int
	DateAjout   time.Time
	Nom         string
	Prenom      string
	Classe      string
	Matricule   *string
}

// NoteRepository accès aux données des notes
type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) error
	// ListAvecEtudiants retourne toutes les notes jointes aux champs de
	// l'étudiant propriétaire, les plus récentes d'abord.
	ListAvecEtudiants(ctx context.Context) ([]NoteAvecEtudiant, error)
	// ListByEtudiantRecentes notes d'un étudiant, date_ajout décroissante
	ListByEtudiantRecentes(ctx context.Context, etudiantID uint) ([]model.Note, error)
	// ListByEtudiantParMatiere notes d'un étudiant, matière alphabétique
	// (ordre propre à l'export, distinct de la fiche étudiant)
	ListByEtudiantParMatiere(ctx context.Context, etudiantID uint) ([]model.Note, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

// noteRepo implémentation GORM de NoteRepository
type noteRepo struct {
	db *gorm.DB
}

// NewNoteRepo crée une instance de NoteRepository
func NewNoteRepo(db *gorm.DB) NoteRepository {
	return &noteRepo{db: db}
}

func (r *noteRepo) Create(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepo) ListAvecEtudiants(ctx context.Context) ([]NoteAvecEtudiant, error) {
	var rows []NoteAvecEtudiant
	err := r.db.WithContext(ctx).Raw(`
		SELECT n.id, n.etudiant_id, n.matiere, n.note, n.coefficient, n.date_ajout,
		       e.nom, e.prenom, e.classe, e.matricule
		FROM notes n
		JOIN etudiants e ON e.id = n.etudiant_id
		ORDER BY n.date_ajout DESC`).
		Scan(&rows).Error
	return rows, err
}

func (r *noteRepo) ListByEtudiantRecentes(ctx context.Context, etudiantID uint) ([]model.Note, error) {
	var notes []model.Note
	err := r.db.WithContext(ctx).
		Where("etudiant_id = ?", etudiantID).
		Order("date_ajout DESC").
		Find(&notes).Error
	return notes, err
}

func (r *noteRepo) ListByEtudiantParMatiere(ctx context.Context, etudiantID uint) ([]model.Note, error) {
	var notes []model.Note
	err := r.db.WithContext(ctx).
		Where("etudiant_id = ?", etudiantID).
		Order("matiere ASC").
		Find(&notes).Error
	return notes, err
}

func (r *noteRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Note{}, id)
	return res.RowsAffected, res.Error
}

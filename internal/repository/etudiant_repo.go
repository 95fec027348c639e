package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gestion-notes/internal/model"
)

// EtudiantAvecStats ligne de la liste agrégée des étudiants
// Moyenne est NULL quand l'étudiant n'a aucune note (la division par la
// somme des coefficients est gardée par NULLIF côté SQL).
type EtudiantAvecStats struct {
	ID              uint
	Nom             string
	Prenom          string
	Classe          string
	DateNaissance   *time.Time
	Matricule       *string
	DateInscription time.Time
	NombreNotes     int64
	Moyenne         *float64
}

// EtudiantRepository accès aux données des étudiants
type EtudiantRepository interface {
	Create(ctx context.Context, etudiant *model.Etudiant) error
	GetByID(ctx context.Context, id uint) (*model.Etudiant, error)
	// ListAvecStats retourne tous les étudiants (ordre alphabétique
	// nom, prenom) avec nombre de notes et moyenne pondérée.
	ListAvecStats(ctx context.Context) ([]EtudiantAvecStats, error)
	// Delete supprime l'étudiant et retourne le nombre de lignes touchées ;
	// les notes partent en cascade via la clé étrangère.
	Delete(ctx context.Context, id uint) (int64, error)
}

// etudiantRepo implémentation GORM de EtudiantRepository
type etudiantRepo struct {
	db *gorm.DB
}

// NewEtudiantRepo crée une instance de EtudiantRepository
func NewEtudiantRepo(db *gorm.DB) EtudiantRepository {
	return &etudiantRepo{db: db}
}

func (r *etudiantRepo) Create(ctx context.Context, etudiant *model.Etudiant) error {
	return r.db.WithContext(ctx).Create(etudiant).Error
}

func (r *etudiantRepo) GetByID(ctx context.Context, id uint) (*model.Etudiant, error) {
	var etudiant model.Etudiant
	if err := r.db.WithContext(ctx).First(&etudiant, id).Error; err != nil {
		return nil, err
	}
	return &etudiant, nil
}

func (r *etudiantRepo) ListAvecStats(ctx context.Context) ([]EtudiantAvecStats, error) {
	var rows []EtudiantAvecStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT e.id, e.nom, e.prenom, e.classe, e.date_naissance,
		       e.matricule, e.date_inscription,
		       COUNT(n.id) AS nombre_notes,
		       ROUND(SUM(n.note * n.coefficient) / NULLIF(SUM(n.coefficient), 0), 2) AS moyenne
		FROM etudiants e
		LEFT JOIN notes n ON n.etudiant_id = e.id
		GROUP BY e.id
		ORDER BY e.nom ASC, e.prenom ASC`).
		Scan(&rows).Error
	return rows, err
}

func (r *etudiantRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Etudiant{}, id)
	return res.RowsAffected, res.Error
}

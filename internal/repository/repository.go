package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Repository point d'entrée agrégé de tous les Repository
type Repository struct {
	Etudiant EtudiantRepository
	Note     NoteRepository
}

// NewRepository crée l'agrégat Repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Etudiant: NewEtudiantRepo(db),
		Note:     NewNoteRepo(db),
	}
}

// IsDuplicateKey indique si l'erreur représente une violation de contrainte
// unique. Le pilote traduit le code PostgreSQL ; aucun code numérique ne
// circule hors de la couche de stockage.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsNotFound indique si l'erreur représente une ligne absente
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

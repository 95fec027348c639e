package service

import (
	"context"
	"math"
	"sort"
	"time"

	"gorm.io/gorm"

	"gestion-notes/internal/model"
	"gestion-notes/internal/repository"
)

// ── Mock EtudiantRepository ──

type mockEtudiantRepo struct {
	etudiants map[uint]*model.Etudiant
	nextID    uint
	noteRepo  *mockNoteRepo
}

func (m *mockEtudiantRepo) Create(_ context.Context, etudiant *model.Etudiant) error {
	// Unicité du matricule, comme la contrainte côté base
	if etudiant.Matricule != nil {
		for _, e := range m.etudiants {
			if e.Matricule != nil && *e.Matricule == *etudiant.Matricule {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	etudiant.ID = m.nextID
	m.nextID++
	if etudiant.DateInscription.IsZero() {
		etudiant.DateInscription = time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	}
	copie := *etudiant
	m.etudiants[etudiant.ID] = &copie
	return nil
}

func (m *mockEtudiantRepo) GetByID(_ context.Context, id uint) (*model.Etudiant, error) {
	if e, ok := m.etudiants[id]; ok {
		copie := *e
		return &copie, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEtudiantRepo) ListAvecStats(_ context.Context) ([]repository.EtudiantAvecStats, error) {
	result := make([]repository.EtudiantAvecStats, 0, len(m.etudiants))
	for _, e := range m.etudiants {
		row := repository.EtudiantAvecStats{
			ID:              e.ID,
			Nom:             e.Nom,
			Prenom:          e.Prenom,
			Classe:          e.Classe,
			DateNaissance:   e.DateNaissance,
			Matricule:       e.Matricule,
			DateInscription: e.DateInscription,
		}
		var sommePonderee, sommeCoef float64
		for _, n := range m.noteRepo.notes {
			if n.EtudiantID == e.ID {
				row.NombreNotes++
				sommePonderee += n.Valeur * float64(n.Coefficient)
				sommeCoef += float64(n.Coefficient)
			}
		}
		// Garde de la division par zéro : moyenne absente, pas nulle
		if sommeCoef > 0 {
			moyenne := math.Round(sommePonderee/sommeCoef*100) / 100
			row.Moyenne = &moyenne
		}
		result = append(result, row)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Nom != result[j].Nom {
			return result[i].Nom < result[j].Nom
		}
		return result[i].Prenom < result[j].Prenom
	})
	return result, nil
}

func (m *mockEtudiantRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := m.etudiants[id]; !ok {
		return 0, nil
	}
	delete(m.etudiants, id)
	// Cascade de la clé étrangère
	for nid, n := range m.noteRepo.notes {
		if n.EtudiantID == id {
			delete(m.noteRepo.notes, nid)
		}
	}
	return 1, nil
}

// ── Mock NoteRepository ──

type mockNoteRepo struct {
	notes        map[uint]*model.Note
	nextID       uint
	etudiantRepo *mockEtudiantRepo
}

func (m *mockNoteRepo) Create(_ context.Context, note *model.Note) error {
	note.ID = m.nextID
	m.nextID++
	if note.DateAjout.IsZero() {
		// Horodatage croissant avec l'identifiant, pour les tests d'ordre
		note.DateAjout = time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC).
			Add(time.Duration(note.ID) * time.Minute)
	}
	copie := *note
	m.notes[note.ID] = &copie
	return nil
}

func (m *mockNoteRepo) ListAvecEtudiants(_ context.Context) ([]repository.NoteAvecEtudiant, error) {
	result := make([]repository.NoteAvecEtudiant, 0, len(m.notes))
	for _, n := range m.notes {
		e, ok := m.etudiantRepo.etudiants[n.EtudiantID]
		if !ok {
			continue
		}
		result = append(result, repository.NoteAvecEtudiant{
			ID:          n.ID,
			EtudiantID:  n.EtudiantID,
			Matiere:     n.Matiere,
			Note:        n.Valeur,
			Coefficient: n.Coefficient,
			DateAjout:   n.DateAjout,
			Nom:         e.Nom,
			Prenom:      e.Prenom,
			Classe:      e.Classe,
			Matricule:   e.Matricule,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DateAjout.After(result[j].DateAjout)
	})
	return result, nil
}

func (m *mockNoteRepo) ListByEtudiantRecentes(_ context.Context, etudiantID uint) ([]model.Note, error) {
	notes := m.notesDe(etudiantID)
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].DateAjout.After(notes[j].DateAjout)
	})
	return notes, nil
}

func (m *mockNoteRepo) ListByEtudiantParMatiere(_ context.Context, etudiantID uint) ([]model.Note, error) {
	notes := m.notesDe(etudiantID)
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Matiere < notes[j].Matiere
	})
	return notes, nil
}

func (m *mockNoteRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := m.notes[id]; !ok {
		return 0, nil
	}
	delete(m.notes, id)
	return 1, nil
}

func (m *mockNoteRepo) notesDe(etudiantID uint) []model.Note {
	var notes []model.Note
	for _, n := range m.notes {
		if n.EtudiantID == etudiantID {
			notes = append(notes, *n)
		}
	}
	return notes
}

// ── Construction ──

func newMockRepository() (*repository.Repository, *mockEtudiantRepo, *mockNoteRepo) {
	etudiantRepo := &mockEtudiantRepo{etudiants: make(map[uint]*model.Etudiant), nextID: 1}
	noteRepo := &mockNoteRepo{notes: make(map[uint]*model.Note), nextID: 1}
	etudiantRepo.noteRepo = noteRepo
	noteRepo.etudiantRepo = etudiantRepo
	repo := &repository.Repository{Etudiant: etudiantRepo, Note: noteRepo}
	return repo, etudiantRepo, noteRepo
}

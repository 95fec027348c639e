package service

import (
	"time"

	"gestion-notes/internal/dto"
	"gestion-notes/internal/model"
)

const dateFormat = "2006-01-02"

func toEtudiantResponse(e *model.Etudiant) dto.EtudiantResponse {
	resp := dto.EtudiantResponse{
		ID:              e.ID,
		Nom:             e.Nom,
		Prenom:          e.Prenom,
		Classe:          e.Classe,
		DateInscription: e.DateInscription.Format(time.RFC3339),
	}
	if e.DateNaissance != nil {
		d := e.DateNaissance.Format(dateFormat)
		resp.DateNaissance = &d
	}
	if e.Matricule != nil {
		resp.Matricule = *e.Matricule
	}
	return resp
}

func toNoteResponse(n *model.Note) dto.NoteResponse {
	return dto.NoteResponse{
		ID:          n.ID,
		EtudiantID:  n.EtudiantID,
		Matiere:     n.Matiere,
		Note:        n.Valeur,
		Coefficient: n.Coefficient,
		DateAjout:   n.DateAjout.Format(time.RFC3339),
	}
}

func toNoteResponses(notes []model.Note) []dto.NoteResponse {
	result := make([]dto.NoteResponse, 0, len(notes))
	for i := range notes {
		result = append(result, toNoteResponse(&notes[i]))
	}
	return result
}

package dto

// ── Module notes — DTO ──

// CreateNoteRequest corps de POST /api/notes
// Note et EtudiantID sont des pointeurs : 0 est une valeur légitime, la
// présence se vérifie par l'absence du champ, pas par sa valeur zéro.
type CreateNoteRequest struct {
	EtudiantID  *uint    `json:"etudiant_id"`
	Matiere     string   `json:"matiere"`
	Note        *float64 `json:"note"`
	Coefficient *int     `json:"coefficient"`
}

// NoteResponse note persistée
type NoteResponse struct {
	ID          uint    `json:"id"`
	EtudiantID  uint    `json:"etudiant_id"`
	Matiere     string  `json:"matiere"`
	Note        float64 `json:"note"`
	Coefficient int     `json:"coefficient"`
	DateAjout   string  `json:"date_ajout"`
}

// NoteDetailResponse élément de GET /api/notes : note jointe à son étudiant
type NoteDetailResponse struct {
	NoteResponse
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Classe    string `json:"classe,omitempty"`
	Matricule string `json:"matricule,omitempty"`
}

package dto

// ── Module étudiants — DTO ──

// CreateEtudiantRequest corps de POST /api/etudiants
// La validation (champs requis, matricule selon le mode strict) est faite
// par le service, avec des messages par champ.
type CreateEtudiantRequest struct {
	Nom           string `json:"nom"`
	Prenom        string `json:"prenom"`
	Classe        string `json:"classe"`
	DateNaissance string `json:"date_naissance"` // AAAA-MM-JJ
	Matricule     string `json:"matricule"`
}

// EtudiantResponse étudiant persisté
type EtudiantResponse struct {
	ID              uint    `json:"id"`
	Nom             string  `json:"nom"`
	Prenom          string  `json:"prenom"`
	Classe          string  `json:"classe,omitempty"`
	DateNaissance   *string `json:"date_naissance,omitempty"` // AAAA-MM-JJ
	Matricule       string  `json:"matricule,omitempty"`
	DateInscription string  `json:"date_inscription"`
}

// EtudiantStatsResponse élément de GET /api/etudiants
// Moyenne est un pointeur : null quand l'étudiant n'a aucune note
// (jamais 0, jamais une erreur).
type EtudiantStatsResponse struct {
	EtudiantResponse
	NombreNotes int64    `json:"nombre_notes"`
	Moyenne     *float64 `json:"moyenne"`
}

// EtudiantDetailResponse étudiant accompagné de ses notes
// (GET /api/etudiants/:id et export JSON ; seul l'ordre des notes diffère)
type EtudiantDetailResponse struct {
	Etudiant EtudiantResponse `json:"etudiant"`
	Notes    []NoteResponse   `json:"notes"`
}

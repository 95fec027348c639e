package model

import "time"

// Note table notes — chaque note appartient à un étudiant ; la suppression
// de l'étudiant entraîne celle de ses notes (ON DELETE CASCADE).
type Note struct {
	ID          uint      `gorm:"primaryKey"                         json:"id"`
	EtudiantID  uint      `gorm:"not null;index"                     json:"etudiant_id"`
	Matiere     string    `gorm:"type:varchar(100);not null"         json:"matiere"`
	Valeur      float64   `gorm:"column:note;type:numeric(4,2);not null" json:"note"`
	Coefficient int       `gorm:"not null;default:1"                 json:"coefficient"`
	DateAjout   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"date_ajout"`

	Etudiant *Etudiant `gorm:"foreignKey:EtudiantID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName nom de la table
func (Note) TableName() string { return "notes" }
